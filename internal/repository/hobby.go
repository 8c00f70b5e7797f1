package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type HobbyRepository struct {
	db *pgxpool.Pool
}

func NewHobbyRepository(db *pgxpool.Pool) *HobbyRepository {
	return &HobbyRepository{db: db}
}

func (r *HobbyRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.Hobby, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, name, description, icon
		FROM hobbies
		WHERE profile_id = $1
		ORDER BY name ASC
	`, profileID)
	if err != nil {
		logger.Log.Error("Ошибка выборки хобби (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.Hobby
	for rows.Next() {
		var h models.Hobby
		if err := rows.Scan(&h.ID, &h.ProfileID, &h.Name, &h.Description, &h.Icon); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

func (r *HobbyRepository) ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error) {
	return listIDsByProfile(ctx, r.db, "hobbies", profileID)
}

func (r *HobbyRepository) Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.Hobby) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if len(deleteIDs) > 0 {
		if _, err := tx.Exec(ctx,
			`DELETE FROM hobbies WHERE profile_id = $1 AND id = ANY($2)`,
			profileID, deleteIDs,
		); err != nil {
			logger.Log.Error("Ошибка удаления хобби (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	for _, h := range items {
		if h.ID > 0 {
			_, err = tx.Exec(ctx, `
				UPDATE hobbies
				SET name = $1, description = $2, icon = $3
				WHERE id = $4 AND profile_id = $5
			`, h.Name, h.Description, h.Icon, h.ID, profileID)
		} else {
			err = tx.QueryRow(ctx, `
				INSERT INTO hobbies (profile_id, name, description, icon)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, profileID, h.Name, h.Description, h.Icon).Scan(&h.ID)
		}
		if err != nil {
			logger.Log.Error("Ошибка записи хобби (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	return tx.Commit(ctx)
}
