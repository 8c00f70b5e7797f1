package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LanguageRepository struct {
	db *pgxpool.Pool
}

func NewLanguageRepository(db *pgxpool.Pool) *LanguageRepository {
	return &LanguageRepository{db: db}
}

func (r *LanguageRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.Language, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, name, level, is_native
		FROM languages
		WHERE profile_id = $1
		ORDER BY is_native DESC, name ASC
	`, profileID)
	if err != nil {
		logger.Log.Error("Ошибка выборки языков (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.Language
	for rows.Next() {
		var l models.Language
		if err := rows.Scan(&l.ID, &l.ProfileID, &l.Name, &l.Level, &l.IsNative); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

func (r *LanguageRepository) ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error) {
	return listIDsByProfile(ctx, r.db, "languages", profileID)
}

func (r *LanguageRepository) Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.Language) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if len(deleteIDs) > 0 {
		if _, err := tx.Exec(ctx,
			`DELETE FROM languages WHERE profile_id = $1 AND id = ANY($2)`,
			profileID, deleteIDs,
		); err != nil {
			logger.Log.Error("Ошибка удаления языков (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	for _, l := range items {
		if l.ID > 0 {
			_, err = tx.Exec(ctx, `
				UPDATE languages
				SET name = $1, level = $2, is_native = $3
				WHERE id = $4 AND profile_id = $5
			`, l.Name, l.Level, l.IsNative, l.ID, profileID)
		} else {
			err = tx.QueryRow(ctx, `
				INSERT INTO languages (profile_id, name, level, is_native)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, profileID, l.Name, l.Level, l.IsNative).Scan(&l.ID)
		}
		if err != nil {
			logger.Log.Error("Ошибка записи языка (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	return tx.Commit(ctx)
}
