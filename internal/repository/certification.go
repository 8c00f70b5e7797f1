package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CertificationRepository struct {
	db *pgxpool.Pool
}

func NewCertificationRepository(db *pgxpool.Pool) *CertificationRepository {
	return &CertificationRepository{db: db}
}

func (r *CertificationRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.Certification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, title, file_name, mime_type, url, badge_color, icon_url, created_at
		FROM certifications
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`, profileID)
	if err != nil {
		logger.Log.Error("Ошибка выборки сертификатов (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.Certification
	for rows.Next() {
		var c models.Certification
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Title, &c.FileName, &c.MimeType, &c.URL, &c.BadgeColor, &c.IconURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CertificationRepository) Create(ctx context.Context, c *models.Certification) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO certifications (profile_id, title, file_name, mime_type, url, badge_color, icon_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at
	`, c.ProfileID, c.Title, c.FileName, c.MimeType, c.URL, c.BadgeColor, c.IconURL,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		logger.Log.Error("Ошибка создания сертификата (repo)", zap.Error(err), zap.Int64("profile_id", c.ProfileID))
	}
	return err
}

func (r *CertificationRepository) Delete(ctx context.Context, profileID, id int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM certifications WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		logger.Log.Error("Ошибка удаления сертификата (repo)", zap.Error(err), zap.Int64("certification_id", id))
	}
	return err
}
