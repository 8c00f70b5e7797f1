package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"workshelf/internal/logger"
	"workshelf/internal/models"
	"workshelf/internal/utils"

	"go.uber.org/zap"
)

var ErrReviewInvalid = errors.New("некорректные данные отзыва")

type ReviewRepo interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.Review, error)
	Create(ctx context.Context, rv *models.Review) error
	Delete(ctx context.Context, profileID, id int64) error
}

type ReviewService struct {
	repo ReviewRepo
}

func NewReviewService(repo ReviewRepo) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) List(ctx context.Context, profileID int64) ([]*models.Review, error) {
	return s.repo.ListByProfile(ctx, profileID)
}

func (s *ReviewService) Create(ctx context.Context, profileID int64, req *models.CreateReviewRequest) (*models.Review, error) {
	company := strings.TrimSpace(req.CompanyName)
	url := strings.TrimSpace(req.URL)
	if company == "" || url == "" {
		return nil, ErrReviewInvalid
	}
	reviewDate, err := utils.ParseDate(req.ReviewDate)
	if err != nil {
		return nil, fmt.Errorf("неверный формат даты отзыва: %w", err)
	}
	review := &models.Review{
		ProfileID:      profileID,
		CompanyName:    company,
		CompanyLogoURL: req.CompanyLogoURL,
		FileName:       strings.TrimSpace(req.FileName),
		Description:    strings.TrimSpace(req.Description),
		URL:            url,
		MimeType:       strings.TrimSpace(req.MimeType),
		ReviewDate:     reviewDate,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	logger.Log.Info("Отзыв добавлен (service)",
		zap.Int64("review_id", review.ID), zap.Int64("profile_id", profileID))
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, profileID, id int64) error {
	logger.Log.Info("Удаление отзыва (service)", zap.Int64("review_id", id))
	return s.repo.Delete(ctx, profileID, id)
}
