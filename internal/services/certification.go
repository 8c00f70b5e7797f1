package services

import (
	"context"
	"errors"
	"strings"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"go.uber.org/zap"
)

var ErrCertificationInvalid = errors.New("некорректные данные сертификата")

type CertificationRepo interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.Certification, error)
	Create(ctx context.Context, c *models.Certification) error
	Delete(ctx context.Context, profileID, id int64) error
}

// CertificationService хранит только метаданные: сам файл лежит во внешнем
// хранилище, у нас остаётся ссылка.
type CertificationService struct {
	repo CertificationRepo
}

func NewCertificationService(repo CertificationRepo) *CertificationService {
	return &CertificationService{repo: repo}
}

func (s *CertificationService) List(ctx context.Context, profileID int64) ([]*models.Certification, error) {
	return s.repo.ListByProfile(ctx, profileID)
}

func (s *CertificationService) Create(ctx context.Context, profileID int64, req *models.CreateCertificationRequest) (*models.Certification, error) {
	title := strings.TrimSpace(req.Title)
	url := strings.TrimSpace(req.URL)
	if title == "" || url == "" {
		return nil, ErrCertificationInvalid
	}
	cert := &models.Certification{
		ProfileID:  profileID,
		Title:      title,
		FileName:   strings.TrimSpace(req.FileName),
		MimeType:   strings.TrimSpace(req.MimeType),
		URL:        url,
		BadgeColor: req.BadgeColor,
		IconURL:    req.IconURL,
	}
	if err := s.repo.Create(ctx, cert); err != nil {
		return nil, err
	}
	logger.Log.Info("Сертификат добавлен (service)",
		zap.Int64("certification_id", cert.ID), zap.Int64("profile_id", profileID))
	return cert, nil
}

func (s *CertificationService) Delete(ctx context.Context, profileID, id int64) error {
	logger.Log.Info("Удаление сертификата (service)", zap.Int64("certification_id", id))
	return s.repo.Delete(ctx, profileID, id)
}
