package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"workshelf/internal/logger"
	"workshelf/internal/models"
	"workshelf/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrProfileNotFound = errors.New("профиль не найден")
	ErrAvatarTooLarge  = errors.New("аватар превышает допустимый размер")
	ErrNotOwner        = errors.New("профиль принадлежит другому пользователю")
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID int) (*models.Profile, error)
	GetByID(ctx context.Context, profileID int64) (*models.Profile, error)
	GetProfileIDByUserID(ctx context.Context, userID int) (int64, error)
	UpdateFields(ctx context.Context, userID int, input *models.UpdateProfileRequest, birthDate, roleStart *time.Time) (*models.Profile, error)
	ClearAvatar(ctx context.Context, userID int) error
	GetAbout(ctx context.Context, profileID int64) (*string, error)
	SetAbout(ctx context.Context, profileID int64, about *string) error
}

// ExperienceLister нужен профилю для суммарного стажа на плитке.
type ExperienceLister interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.Experience, error)
}

type ProfileService struct {
	repo           ProfileRepo
	experiences    ExperienceLister
	avatarMaxBytes int64
}

func NewProfileService(repo ProfileRepo, experiences ExperienceLister, avatarMaxBytes int64) *ProfileService {
	return &ProfileService{repo: repo, experiences: experiences, avatarMaxBytes: avatarMaxBytes}
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID int) (*models.Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// OwnsProfile проверяет, что профиль принадлежит пользователю из токена.
func (s *ProfileService) OwnsProfile(ctx context.Context, userID int, profileID int64) error {
	own, err := s.repo.GetProfileIDByUserID(ctx, userID)
	if err != nil {
		return ErrProfileNotFound
	}
	if own != profileID {
		return ErrNotOwner
	}
	return nil
}

// ProfileIDForUser возвращает id профиля текущего пользователя.
func (s *ProfileService) ProfileIDForUser(ctx context.Context, userID int) (int64, error) {
	id, err := s.repo.GetProfileIDByUserID(ctx, userID)
	if err != nil {
		return 0, ErrProfileNotFound
	}
	return id, nil
}

// Update — частичное обновление: присланные поля пишем, остальные не трогаем.
// Даты приходят строками и валидируются до запроса в базу.
func (s *ProfileService) Update(ctx context.Context, userID int, input *models.UpdateProfileRequest) (*models.Profile, error) {
	if input.AvatarURL != nil && s.avatarMaxBytes > 0 && int64(len(*input.AvatarURL)) > s.avatarMaxBytes {
		return nil, ErrAvatarTooLarge
	}

	birthDate, err := utils.ParseDatePtr(input.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("неверный формат даты рождения: %w", err)
	}
	roleStart, err := utils.ParseDatePtr(input.CurrentRoleStart)
	if err != nil {
		return nil, fmt.Errorf("неверный формат даты начала роли: %w", err)
	}

	profile, err := s.repo.UpdateFields(ctx, userID, input, birthDate, roleStart)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Профиль обновлён (service)", zap.Int("user_id", userID))
	return profile, nil
}

func (s *ProfileService) ClearAvatar(ctx context.Context, userID int) error {
	logger.Log.Info("Удаление аватара (service)", zap.Int("user_id", userID))
	return s.repo.ClearAvatar(ctx, userID)
}

func (s *ProfileService) GetAbout(ctx context.Context, profileID int64) (*string, error) {
	return s.repo.GetAbout(ctx, profileID)
}

func (s *ProfileService) SetAbout(ctx context.Context, profileID int64, about *string) error {
	return s.repo.SetAbout(ctx, profileID, about)
}

// Options — допустимые значения enum-полей для форм на фронте.
func (s *ProfileService) Options() models.ProfileOptions {
	return models.ProfileOptions{
		Gender:           []string{"male", "female", "other", "prefer_not_to_say"},
		MaritalStatus:    []string{"single", "married", "divorced", "widowed", "partnered"},
		EmploymentStatus: []string{"employed", "self_employed", "freelance", "unemployed", "student", "retired"},
	}
}

// Tile собирает сводку профиля: возраст, стаж в текущей роли и суммарный
// стаж по слитым интервалам опыта.
func (s *ProfileService) Tile(ctx context.Context, userID int) (*models.ProfileTileResponse, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	now := time.Now()
	tile := &models.ProfileTileResponse{
		FullName:           profile.DisplayName,
		Age:                utils.YearsBetween(profile.BirthDate, now),
		MaritalStatus:      profile.MaritalStatus,
		EmploymentStatus:   profile.EmploymentStatus,
		CurrentTitle:       profile.CurrentTitle,
		YearsInCurrentRole: utils.YearsBetween(profile.CurrentRoleStart, now),
	}
	if profile.FullName != nil && *profile.FullName != "" {
		tile.FullName = *profile.FullName
	}

	exps, err := s.experiences.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	months := 0
	if len(exps) > 0 {
		flat := make([]models.Experience, 0, len(exps))
		for _, e := range exps {
			flat = append(flat, *e)
		}
		months = utils.TotalExperienceMonths(flat, now)
		years := math.Round(float64(months)/12*10) / 10
		tile.YearsTotal = &years
	}
	tile.ExperienceLabel = utils.FormatExperienceLabel(months, "years")
	return tile, nil
}
