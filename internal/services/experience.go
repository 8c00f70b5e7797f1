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

var ErrExperienceInvalid = errors.New("некорректные данные опыта")

type ExperienceRepo interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.Experience, error)
	Save(ctx context.Context, e *models.Experience, tasks []string, technologies []string) error
	Delete(ctx context.Context, profileID, id int64) error
	ListTechnologyNames(ctx context.Context) ([]string, error)
}

type ExperienceService struct {
	repo ExperienceRepo
}

func NewExperienceService(repo ExperienceRepo) *ExperienceService {
	return &ExperienceService{repo: repo}
}

func (s *ExperienceService) List(ctx context.Context, profileID int64) ([]*models.Experience, error) {
	return s.repo.ListByProfile(ctx, profileID)
}

// Save создаёт или обновляет опыт вместе с задачами и технологиями.
// Задачи перезаписываются целиком, технологии апсертятся в общий каталог.
func (s *ExperienceService) Save(ctx context.Context, profileID int64, req *models.SaveExperienceRequest) (*models.Experience, error) {
	title := strings.TrimSpace(req.Title)
	company := strings.TrimSpace(req.Company)
	if title == "" || company == "" {
		return nil, ErrExperienceInvalid
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("неверный формат даты начала: %w", err)
	}
	end, err := utils.ParseDatePtr(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("неверный формат даты окончания: %w", err)
	}
	// У текущего места работы даты окончания нет.
	if req.IsCurrent {
		end = nil
	} else if end != nil && end.Before(start) {
		oldStart := start
		start = *end
		end = &oldStart
	}

	tasks := make([]string, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		if t = strings.TrimSpace(t); t != "" {
			tasks = append(tasks, t)
		}
	}
	seen := make(map[string]struct{}, len(req.Technologies))
	technologies := make([]string, 0, len(req.Technologies))
	for _, t := range req.Technologies {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		technologies = append(technologies, t)
	}

	exp := &models.Experience{
		ID:             req.ID,
		ProfileID:      profileID,
		Title:          title,
		Company:        company,
		CompanyLogoURL: req.CompanyLogoURL,
		IsConsultancy:  req.IsConsultancy,
		Client:         req.Client,
		ClientLogoURL:  req.ClientLogoURL,
		StartDate:      start,
		EndDate:        end,
		IsCurrent:      req.IsCurrent,
		Description:    req.Description,
	}
	if err := s.repo.Save(ctx, exp, tasks, technologies); err != nil {
		return nil, err
	}

	logger.Log.Info("Опыт сохранён (service)",
		zap.Int64("experience_id", exp.ID),
		zap.Int64("profile_id", profileID),
	)
	return exp, nil
}

func (s *ExperienceService) Delete(ctx context.Context, profileID, id int64) error {
	logger.Log.Info("Удаление опыта (service)", zap.Int64("experience_id", id))
	return s.repo.Delete(ctx, profileID, id)
}

// TechnologySuggestions — имена из общего каталога для автодополнения.
func (s *ExperienceService) TechnologySuggestions(ctx context.Context) ([]string, error) {
	return s.repo.ListTechnologyNames(ctx)
}
