package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type HighlightRepository struct {
	db *pgxpool.Pool
}

func NewHighlightRepository(db *pgxpool.Pool) *HighlightRepository {
	return &HighlightRepository{db: db}
}

func (r *HighlightRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.ProfileHighlight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, title, value, icon, position
		FROM profile_highlights
		WHERE profile_id = $1
		ORDER BY position ASC
	`, profileID)
	if err != nil {
		logger.Log.Error("Ошибка выборки хайлайтов (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.ProfileHighlight
	for rows.Next() {
		var h models.ProfileHighlight
		if err := rows.Scan(&h.ID, &h.ProfileID, &h.Title, &h.Value, &h.Icon, &h.Position); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

func (r *HighlightRepository) ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error) {
	return listIDsByProfile(ctx, r.db, "profile_highlights", profileID)
}

func (r *HighlightRepository) Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.ProfileHighlight) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if len(deleteIDs) > 0 {
		if _, err := tx.Exec(ctx,
			`DELETE FROM profile_highlights WHERE profile_id = $1 AND id = ANY($2)`,
			profileID, deleteIDs,
		); err != nil {
			logger.Log.Error("Ошибка удаления хайлайтов (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	for _, h := range items {
		if h.ID > 0 {
			_, err = tx.Exec(ctx, `
				UPDATE profile_highlights
				SET title = $1, value = $2, icon = $3, position = $4
				WHERE id = $5 AND profile_id = $6
			`, h.Title, h.Value, h.Icon, h.Position, h.ID, profileID)
		} else {
			err = tx.QueryRow(ctx, `
				INSERT INTO profile_highlights (profile_id, title, value, icon, position)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`, profileID, h.Title, h.Value, h.Icon, h.Position).Scan(&h.ID)
		}
		if err != nil {
			logger.Log.Error("Ошибка записи хайлайта (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	return tx.Commit(ctx)
}
