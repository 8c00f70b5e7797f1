package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, company_name, company_logo_url, file_name, description, url, mime_type, review_date, created_at
		FROM reviews
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`, profileID)
	if err != nil {
		logger.Log.Error("Ошибка выборки отзывов (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.ProfileID, &rv.CompanyName, &rv.CompanyLogoURL, &rv.FileName, &rv.Description, &rv.URL, &rv.MimeType, &rv.ReviewDate, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &rv)
	}
	return out, rows.Err()
}

func (r *ReviewRepository) Create(ctx context.Context, rv *models.Review) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (profile_id, company_name, company_logo_url, file_name, description, url, mime_type, review_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at
	`, rv.ProfileID, rv.CompanyName, rv.CompanyLogoURL, rv.FileName, rv.Description, rv.URL, rv.MimeType, rv.ReviewDate,
	).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		logger.Log.Error("Ошибка создания отзыва (repo)", zap.Error(err), zap.Int64("profile_id", rv.ProfileID))
	}
	return err
}

func (r *ReviewRepository) Delete(ctx context.Context, profileID, id int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM reviews WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		logger.Log.Error("Ошибка удаления отзыва (repo)", zap.Error(err), zap.Int64("review_id", id))
	}
	return err
}
