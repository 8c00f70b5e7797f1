package repository

import (
	"context"
	"strings"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	logger.Log.Debug("Проверка email на уникальность (repo)", zap.String("email", email))
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки email (repo)", zap.Error(err))
	}
	return exists, err
}

// CreateUserWithProfile создаёт пользователя и его профиль в одной транзакции:
// пользователь без профиля в системе существовать не должен.
func (r *UserRepository) CreateUserWithProfile(ctx context.Context, user *models.User, displayName string) (*models.Profile, error) {
	logger.Log.Info("Создание пользователя (repo)", zap.String("email", user.Email))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, password_hash) VALUES (lower($1), $2)
		 RETURNING id, created_at, updated_at`,
		strings.TrimSpace(user.Email), user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		logger.Log.Error("Ошибка создания пользователя (repo)", zap.Error(err))
		return nil, err
	}

	var p models.Profile
	err = tx.QueryRow(ctx,
		`INSERT INTO profiles (user_id, display_name, theme, locale)
		 VALUES ($1, $2, 'system', 'en')
		 RETURNING id, user_id, display_name, theme, locale, created_at, updated_at`,
		user.ID, displayName,
	).Scan(&p.ID, &p.UserID, &p.DisplayName, &p.Theme, &p.Locale, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		logger.Log.Error("Ошибка создания профиля (repo)", zap.Error(err), zap.Int("user_id", user.ID))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по email (repo)")
	query := `SELECT id, email, password_hash, created_at, updated_at
	FROM users
	WHERE lower(email) = lower($1)`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по ID (repo)", zap.Int("user_id", id))
	query := `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		logger.Log.Error("Ошибка получения пользователя по ID (repo)", zap.Int("user_id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateUserPassword(ctx context.Context, userID int, passwordHash string) error {
	logger.Log.Debug("Обновление пароля пользователя (repo)", zap.Int("user_id", userID))
	_, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`,
		passwordHash, userID,
	)
	if err != nil {
		logger.Log.Error("Ошибка обновления пароля (repo)", zap.Error(err))
	}
	return err
}

func (r *UserRepository) UpdateUserEmail(ctx context.Context, userID int, email string) error {
	logger.Log.Debug("Обновление email пользователя (repo)", zap.Int("user_id", userID))
	_, err := r.db.Exec(ctx,
		`UPDATE users SET email = lower($1), updated_at = now() WHERE id = $2`,
		strings.TrimSpace(email), userID,
	)
	if err != nil {
		logger.Log.Error("Ошибка обновления email (repo)", zap.Error(err))
	}
	return err
}

// GetUserCardByEmail — короткая карточка (для GET /users/by-email).
func (r *UserRepository) GetUserCardByEmail(ctx context.Context, email string) (*models.UserProfileCard, error) {
	return r.getUserCard(ctx,
		`SELECT u.id, u.email, u.created_at, p.display_name, p.theme, p.locale
		 FROM users u JOIN profiles p ON p.user_id = u.id
		 WHERE lower(u.email) = lower($1)`, email)
}

func (r *UserRepository) GetUserCardByID(ctx context.Context, id int) (*models.UserProfileCard, error) {
	return r.getUserCard(ctx,
		`SELECT u.id, u.email, u.created_at, p.display_name, p.theme, p.locale
		 FROM users u JOIN profiles p ON p.user_id = u.id
		 WHERE u.id = $1`, id)
}

func (r *UserRepository) getUserCard(ctx context.Context, query string, arg interface{}) (*models.UserProfileCard, error) {
	var c models.UserProfileCard
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Email, &c.CreatedAt, &c.DisplayName, &c.Theme, &c.Locale,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
