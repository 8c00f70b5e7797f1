package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type EducationRepository struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{db: db}
}

const educationColumns = `id, profile_id, education, school, school_logo_url, degree,
	start_date, end_date, is_current, created_at, updated_at`

func scanEducation(row pgx.Row) (*models.Education, error) {
	var e models.Education
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.Education, &e.School, &e.SchoolLogoURL, &e.Degree,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EducationRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+educationColumns+`
		 FROM educations
		 WHERE profile_id = $1
		 ORDER BY is_current DESC, end_date DESC NULLS FIRST, start_date DESC`, profileID)
	if err != nil {
		logger.Log.Error("Ошибка выборки образования (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EducationRepository) Create(ctx context.Context, e *models.Education) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO educations
			(profile_id, education, school, school_logo_url, degree, start_date, end_date, is_current)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at
	`, e.ProfileID, e.Education, e.School, e.SchoolLogoURL, e.Degree, e.StartDate, e.EndDate, e.IsCurrent,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		logger.Log.Error("Ошибка создания образования (repo)", zap.Error(err), zap.Int64("profile_id", e.ProfileID))
	}
	return err
}

func (r *EducationRepository) Update(ctx context.Context, e *models.Education) error {
	err := r.db.QueryRow(ctx, `
		UPDATE educations
		SET education = $1, school = $2, school_logo_url = $3, degree = $4,
		    start_date = $5, end_date = $6, is_current = $7, updated_at = now()
		WHERE id = $8 AND profile_id = $9
		RETURNING created_at, updated_at
	`, e.Education, e.School, e.SchoolLogoURL, e.Degree,
		e.StartDate, e.EndDate, e.IsCurrent, e.ID, e.ProfileID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		logger.Log.Error("Ошибка обновления образования (repo)", zap.Error(err), zap.Int64("education_id", e.ID))
	}
	return err
}

func (r *EducationRepository) Delete(ctx context.Context, profileID, id int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM educations WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		logger.Log.Error("Ошибка удаления образования (repo)", zap.Error(err), zap.Int64("education_id", id))
	}
	return err
}
