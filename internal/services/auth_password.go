package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
	"workshelf/internal/logger"
	"workshelf/internal/models"
	"workshelf/internal/utils"

	"go.uber.org/zap"
)

type PasswordService struct {
	repo        PasswordResetRepo
	emailSender EmailSender
	frontendURL string // фронтовый URL: ссылка вида /auth?mode=reset&token=...
	tokenTTL    time.Duration
	now         func() time.Time
}

type PasswordResetRepo interface {
	FindUserIDByEmail(ctx context.Context, email string) (int64, error)
	InvalidateActive(ctx context.Context, userID int64) error
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	GetByHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error)
	ConsumeAndSetPassword(ctx context.Context, tokenID, userID int64, passwordHash string) error
}

type EmailSender interface {
	SendPasswordReset(ctx context.Context, to, resetLink string, ttl time.Duration) error
}

var (
	// Не различаем "не найден" и "уже использован" — нечего отдавать атакующему.
	ErrTokenInvalid = errors.New("неверный или использованный токен")
	ErrTokenExpired = errors.New("токен истёк")
)

func NewPasswordService(repo PasswordResetRepo, emailSender EmailSender, frontendURL string, tokenTTL time.Duration) *PasswordService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * time.Minute
	}
	return &PasswordService{
		repo:        repo,
		emailSender: emailSender,
		frontendURL: frontendURL,
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

// hashToken — необратимый хеш: в базе сырой токен не живёт никогда.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// RequestReset генерирует одноразовый токен и отправляет письмо со ссылкой.
// Ошибка всегда nil (не раскрываем, существует ли такой e-mail); ссылка
// возвращается вызывающему только для dev-режима.
func (s *PasswordService) RequestReset(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)
	logger.Log.Info("Запрос на сброс пароля")

	userID, err := s.repo.FindUserIDByEmail(ctx, email)
	if err != nil {
		// Не раскрываем наличие почты пользователю, но логируем для нас:
		logger.Log.Warn("Не удалось найти пользователя по email при запросе сброса", zap.Error(err))
		return "", nil
	}

	// Прежние активные токены гасим: живым остаётся максимум один.
	if err := s.repo.InvalidateActive(ctx, userID); err != nil {
		logger.Log.Error("Ошибка инвалидации прежних токенов", zap.Error(err), zap.Int64("user_id", userID))
		return "", nil
	}

	// Криптостойкий токен: 256 бит, hex
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		logger.Log.Error("Ошибка генерации токена для сброса", zap.Error(err), zap.Int64("user_id", userID))
		return "", nil
	}
	token := hex.EncodeToString(raw)

	expires := s.now().Add(s.tokenTTL)
	if err := s.repo.Create(ctx, userID, hashToken(token), expires); err != nil {
		logger.Log.Error("Ошибка сохранения токена сброса пароля",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return "", nil
	}

	resetLink := fmt.Sprintf("%s/auth?mode=reset&token=%s", s.frontendURL, token)
	if err := s.emailSender.SendPasswordReset(ctx, email, resetLink, s.tokenTTL); err != nil {
		logger.Log.Error("Ошибка отправки письма для сброса пароля",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		// Не фейлим намеренно — чтобы нельзя было брутить наличие e-mail
	}

	logger.Log.Info("Письмо со ссылкой на сброс пароля поставлено на отправку",
		zap.Int64("user_id", userID),
		zap.Time("expires_at", expires),
	)
	return resetLink, nil
}

// ResetPassword подтверждает токен и устанавливает новый пароль.
// Запись пароля и пометка токена использованным выполняются атомарно.
func (s *PasswordService) ResetPassword(ctx context.Context, token, newPassword string) error {
	logger.Log.Info("Попытка сброса пароля по токену")

	if len(newPassword) < 8 {
		logger.Log.Warn("Слишком короткий новый пароль")
		return ErrPasswordTooShort
	}

	rec, err := s.repo.GetByHash(ctx, hashToken(token))
	if err != nil {
		logger.Log.Warn("Токен не найден при сбросе пароля", zap.Error(err))
		return ErrTokenInvalid
	}
	if rec.UsedAt != nil {
		logger.Log.Warn("Повторное использование токена сброса", zap.Int64("token_id", rec.ID))
		return ErrTokenInvalid
	}
	if !rec.ExpiresAt.After(s.now()) {
		logger.Log.Warn("Просроченный токен при сбросе пароля", zap.Int64("token_id", rec.ID))
		return ErrTokenExpired
	}

	pwHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("Ошибка генерации хеша пароля", zap.Error(err), zap.Int64("user_id", rec.UserID))
		return err
	}

	if err := s.repo.ConsumeAndSetPassword(ctx, rec.ID, rec.UserID, pwHash); err != nil {
		logger.Log.Error("Ошибка атомарного сброса пароля",
			zap.Int64("user_id", rec.UserID),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Пароль успешно сброшен", zap.Int64("user_id", rec.UserID))
	return nil
}
