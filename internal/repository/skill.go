package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SkillRepository struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, name, proficiency, icon, position, created_at, updated_at
		FROM skills
		WHERE profile_id = $1
		ORDER BY position ASC
	`, profileID)
	if err != nil {
		logger.Log.Error("Ошибка выборки навыков (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Proficiency, &s.Icon, &s.Position, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *SkillRepository) ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error) {
	return listIDsByProfile(ctx, r.db, "skills", profileID)
}

// Replace применяет вычисленный diff одной транзакцией: удаляем выпавшие
// строки, обновляем существующие, вставляем новые. Все предикаты включают
// profile_id — чужой id из payload строку другого профиля не тронет.
func (r *SkillRepository) Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.Skill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if len(deleteIDs) > 0 {
		if _, err := tx.Exec(ctx,
			`DELETE FROM skills WHERE profile_id = $1 AND id = ANY($2)`,
			profileID, deleteIDs,
		); err != nil {
			logger.Log.Error("Ошибка удаления навыков (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	for _, s := range items {
		if s.ID > 0 {
			_, err = tx.Exec(ctx, `
				UPDATE skills
				SET name = $1, proficiency = $2, icon = $3, position = $4, updated_at = now()
				WHERE id = $5 AND profile_id = $6
			`, s.Name, s.Proficiency, s.Icon, s.Position, s.ID, profileID)
		} else {
			err = tx.QueryRow(ctx, `
				INSERT INTO skills (profile_id, name, proficiency, icon, position)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`, profileID, s.Name, s.Proficiency, s.Icon, s.Position).Scan(&s.ID)
		}
		if err != nil {
			logger.Log.Error("Ошибка записи навыка (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *SkillRepository) Delete(ctx context.Context, profileID, id int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM skills WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		logger.Log.Error("Ошибка удаления навыка (repo)", zap.Error(err), zap.Int64("skill_id", id))
	}
	return err
}

// listIDsByProfile — общая выборка id дочерних строк профиля.
func listIDsByProfile(ctx context.Context, db *pgxpool.Pool, table string, profileID int64) ([]int64, error) {
	rows, err := db.Query(ctx, `SELECT id FROM `+table+` WHERE profile_id = $1`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
