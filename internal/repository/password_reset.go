package repository

import (
	"context"
	"time"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PasswordResetRepository struct {
	db *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO password_reset_tokens (user_id, token_hash, expires_at) VALUES ($1,$2,$3)`,
		userID, tokenHash, expiresAt,
	)
	if err != nil {
		logger.Log.Error("Ошибка сохранения токена сброса (repo)", zap.Error(err), zap.Int64("user_id", userID))
	}
	return err
}

// InvalidateActive гасит все живые токены пользователя перед выпуском нового:
// активным может быть максимум один.
func (r *PasswordResetRepository) InvalidateActive(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE password_reset_tokens
		SET used_at = now()
		WHERE user_id = $1
		  AND used_at IS NULL
		  AND expires_at > now()
	`, userID)
	if err != nil {
		logger.Log.Error("Ошибка инвалидации активных токенов (repo)", zap.Error(err), zap.Int64("user_id", userID))
	}
	return err
}

// GetByHash возвращает строку токена независимо от её состояния:
// использован токен или просрочен — решает сервис, чтобы различать ошибки.
func (r *PasswordResetRepository) GetByHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token_hash, expires_at, used_at, created_at
		FROM password_reset_tokens
		WHERE token_hash = $1
	`, tokenHash)

	var t models.PasswordResetToken
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// ConsumeAndSetPassword атомарно помечает токен использованным и меняет пароль.
// Либо обе записи, либо ни одной — иначе остался бы рабочий токен при уже
// изменённом пароле (или наоборот).
func (r *PasswordResetRepository) ConsumeAndSetPassword(ctx context.Context, tokenID, userID int64, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`,
		passwordHash, userID,
	); err != nil {
		logger.Log.Error("Ошибка обновления пароля в транзакции (repo)", zap.Error(err), zap.Int64("user_id", userID))
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE password_reset_tokens SET used_at = now() WHERE id = $1 AND used_at IS NULL`,
		tokenID,
	); err != nil {
		logger.Log.Error("Ошибка пометки токена использованным (repo)", zap.Error(err), zap.Int64("token_id", tokenID))
		return err
	}

	return tx.Commit(ctx)
}

func (r *PasswordResetRepository) FindUserIDByEmail(ctx context.Context, email string) (int64, error) {
	var userID int64
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE lower(email)=lower($1) LIMIT 1`, email).Scan(&userID)
	return userID, err
}
