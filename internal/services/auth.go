package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"workshelf/internal/logger"
	"workshelf/internal/models"
	"workshelf/internal/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	repo        UserRepo
	profileRepo ProfileRepo
}

func NewAuthService(repo UserRepo, profileRepo ProfileRepo) *AuthService {
	return &AuthService{repo: repo, profileRepo: profileRepo}
}

type UserRepo interface {
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	CreateUserWithProfile(ctx context.Context, user *models.User, displayName string) (*models.Profile, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID int, passwordHash string) error
	UpdateUserEmail(ctx context.Context, userID int, email string) error
	GetUserCardByEmail(ctx context.Context, email string) (*models.UserProfileCard, error)
	GetUserCardByID(ctx context.Context, id int) (*models.UserProfileCard, error)
}

var (
	ErrEmailInUse         = errors.New("email уже используется")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrPasswordTooShort   = errors.New("пароль слишком короткий (мин. 8)")
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) RegisterUser(ctx context.Context, email, plainPassword, displayName string) (*models.User, *models.Profile, error) {
	email = NormalizeEmail(email)
	logger.Log.Info("Регистрация пользователя (service)", zap.String("email", email))

	if exists, err := s.repo.IsEmailTaken(ctx, email); exists || err != nil {
		if err != nil {
			logger.Log.Error("Ошибка проверки email (service)", zap.Error(err))
			return nil, nil, err
		}
		return nil, nil, ErrEmailInUse
	}

	if len(plainPassword) < 8 {
		return nil, nil, ErrPasswordTooShort
	}

	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, nil, err
	}

	user := &models.User{Email: email, PasswordHash: hashed}
	profile, err := s.repo.CreateUserWithProfile(ctx, user, strings.TrimSpace(displayName))
	if err != nil {
		logger.Log.Error("Ошибка создания пользователя (service)", zap.Error(err))
		return nil, nil, err
	}

	logger.Log.Info("Пользователь зарегистрирован (service)", zap.Int("user_id", user.ID))
	return user, profile, nil
}

func (s *AuthService) LoginUser(
	ctx context.Context,
	email, password, jwtSecret string,
	accessTTL time.Duration,
) (string, *models.User, *models.Profile, error) {
	email = NormalizeEmail(email)
	logger.Log.Info("Попытка входа (service)", zap.String("email", email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Log.Warn("Пользователь не найден (service)", zap.Error(err))
		// Не различаем "нет пользователя" и "неверный пароль"
		return "", nil, nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Log.Warn("Неверный пароль (service)", zap.Int("user_id", user.ID))
		return "", nil, nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateToken(jwtSecret, user.ID, accessTTL)
	if err != nil {
		logger.Log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", nil, nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		logger.Log.Error("Профиль не найден при входе (service)", zap.Error(err), zap.Int("user_id", user.ID))
		return "", nil, nil, err
	}

	logger.Log.Info("Вход выполнен (service)", zap.Int("user_id", user.ID))
	return accessToken, user, profile, nil
}

func (s *AuthService) Me(ctx context.Context, userID int) (*models.User, *models.Profile, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, ErrUserNotFound
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

// ChangePassword меняет пароль для авторизованного пользователя по старому паролю.
func (s *AuthService) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	logger.Log.Info("Смена пароля (service)", zap.Int("user_id", userID))

	if len(newPassword) < 8 {
		logger.Log.Warn("Слишком короткий новый пароль", zap.Int("user_id", userID))
		return ErrPasswordTooShort
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		logger.Log.Warn("Старый пароль не совпадает", zap.Int("user_id", userID))
		return ErrInvalidCredentials
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("Ошибка генерации нового хеша пароля", zap.Error(err), zap.Int("user_id", userID))
		return err
	}

	if err := s.repo.UpdateUserPassword(ctx, userID, newHash); err != nil {
		logger.Log.Error("Ошибка обновления пароля (service)", zap.Error(err), zap.Int("user_id", userID))
		return err
	}

	logger.Log.Info("Пароль успешно изменён", zap.Int("user_id", userID))
	return nil
}

// ChangeEmail меняет email после подтверждения паролем.
func (s *AuthService) ChangeEmail(ctx context.Context, userID int, newEmail, password string) error {
	newEmail = NormalizeEmail(newEmail)
	logger.Log.Info("Смена email (service)", zap.Int("user_id", userID))

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Log.Warn("Пароль не совпадает при смене email", zap.Int("user_id", userID))
		return ErrInvalidCredentials
	}

	if exists, err := s.repo.IsEmailTaken(ctx, newEmail); exists || err != nil {
		if err != nil {
			return err
		}
		return ErrEmailInUse
	}

	if err := s.repo.UpdateUserEmail(ctx, userID, newEmail); err != nil {
		logger.Log.Error("Ошибка обновления email (service)", zap.Error(err), zap.Int("user_id", userID))
		return err
	}

	logger.Log.Info("Email изменён", zap.Int("user_id", userID))
	return nil
}

func (s *AuthService) GetUserCardByEmail(ctx context.Context, email string) (*models.UserProfileCard, error) {
	card, err := s.repo.GetUserCardByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, ErrUserNotFound
	}
	return card, nil
}

func (s *AuthService) GetUserCardByID(ctx context.Context, id int) (*models.UserProfileCard, error) {
	card, err := s.repo.GetUserCardByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return card, nil
}
