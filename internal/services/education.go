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

var ErrEducationInvalid = errors.New("некорректные данные образования")

type EducationRepo interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.Education, error)
	Create(ctx context.Context, e *models.Education) error
	Update(ctx context.Context, e *models.Education) error
	Delete(ctx context.Context, profileID, id int64) error
}

type EducationService struct {
	repo EducationRepo
}

func NewEducationService(repo EducationRepo) *EducationService {
	return &EducationService{repo: repo}
}

func (s *EducationService) List(ctx context.Context, profileID int64) ([]*models.Education, error) {
	return s.repo.ListByProfile(ctx, profileID)
}

func (s *EducationService) buildEducation(profileID, id int64, req *models.SaveEducationRequest) (*models.Education, error) {
	school := strings.TrimSpace(req.School)
	if school == "" {
		return nil, ErrEducationInvalid
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("неверный формат даты начала: %w", err)
	}
	end, err := utils.ParseDatePtr(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("неверный формат даты окончания: %w", err)
	}
	if req.IsCurrent {
		end = nil
	}
	return &models.Education{
		ID:            id,
		ProfileID:     profileID,
		Education:     req.Education,
		School:        school,
		SchoolLogoURL: req.SchoolLogoURL,
		Degree:        req.Degree,
		StartDate:     start,
		EndDate:       end,
		IsCurrent:     req.IsCurrent,
	}, nil
}

func (s *EducationService) Create(ctx context.Context, profileID int64, req *models.SaveEducationRequest) (*models.Education, error) {
	edu, err := s.buildEducation(profileID, 0, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, edu); err != nil {
		return nil, err
	}
	logger.Log.Info("Образование добавлено (service)",
		zap.Int64("education_id", edu.ID), zap.Int64("profile_id", profileID))
	return edu, nil
}

func (s *EducationService) Update(ctx context.Context, profileID, id int64, req *models.SaveEducationRequest) (*models.Education, error) {
	edu, err := s.buildEducation(profileID, id, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, edu); err != nil {
		return nil, err
	}
	logger.Log.Info("Образование обновлено (service)", zap.Int64("education_id", id))
	return edu, nil
}

func (s *EducationService) Delete(ctx context.Context, profileID, id int64) error {
	logger.Log.Info("Удаление образования (service)", zap.Int64("education_id", id))
	return s.repo.Delete(ctx, profileID, id)
}
