package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.ContactMethod, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, type, value, label, icon, position
		FROM contact_methods
		WHERE profile_id = $1
		ORDER BY position ASC
	`, profileID)
	if err != nil {
		logger.Log.Error("Ошибка выборки контактов (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.ContactMethod
	for rows.Next() {
		var c models.ContactMethod
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Type, &c.Value, &c.Label, &c.Icon, &c.Position); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *ContactRepository) ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error) {
	return listIDsByProfile(ctx, r.db, "contact_methods", profileID)
}

func (r *ContactRepository) Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.ContactMethod) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if len(deleteIDs) > 0 {
		if _, err := tx.Exec(ctx,
			`DELETE FROM contact_methods WHERE profile_id = $1 AND id = ANY($2)`,
			profileID, deleteIDs,
		); err != nil {
			logger.Log.Error("Ошибка удаления контактов (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	for _, c := range items {
		if c.ID > 0 {
			_, err = tx.Exec(ctx, `
				UPDATE contact_methods
				SET type = $1, value = $2, label = $3, icon = $4, position = $5
				WHERE id = $6 AND profile_id = $7
			`, c.Type, c.Value, c.Label, c.Icon, c.Position, c.ID, profileID)
		} else {
			err = tx.QueryRow(ctx, `
				INSERT INTO contact_methods (profile_id, type, value, label, icon, position)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`, profileID, c.Type, c.Value, c.Label, c.Icon, c.Position).Scan(&c.ID)
		}
		if err != nil {
			logger.Log.Error("Ошибка записи контакта (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	return tx.Commit(ctx)
}
