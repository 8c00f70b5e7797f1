package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"workshelf/internal/models"
	"workshelf/internal/utils"
)

// Мок-репозиторий токенов сброса (заглушка)
type mockResetRepo struct {
	usersByEmail map[string]int64
	tokens       []*models.PasswordResetToken
	passwords    map[int64]string
	nextID       int64
}

func newMockResetRepo() *mockResetRepo {
	return &mockResetRepo{
		usersByEmail: make(map[string]int64),
		passwords:    make(map[int64]string),
	}
}

func (m *mockResetRepo) FindUserIDByEmail(_ context.Context, email string) (int64, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return 0, errors.New("not found")
	}
	return id, nil
}

func (m *mockResetRepo) InvalidateActive(_ context.Context, userID int64) error {
	now := time.Now()
	for _, t := range m.tokens {
		if t.UserID == userID && t.UsedAt == nil && t.ExpiresAt.After(now) {
			used := now
			t.UsedAt = &used
		}
	}
	return nil
}

func (m *mockResetRepo) Create(_ context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	m.nextID++
	m.tokens = append(m.tokens, &models.PasswordResetToken{
		ID:        m.nextID,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	})
	return nil
}

func (m *mockResetRepo) GetByHash(_ context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	for _, t := range m.tokens {
		if t.TokenHash == tokenHash {
			return t, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockResetRepo) ConsumeAndSetPassword(_ context.Context, tokenID, userID int64, passwordHash string) error {
	for _, t := range m.tokens {
		if t.ID == tokenID {
			if t.UsedAt != nil {
				return errors.New("token already consumed")
			}
			used := time.Now()
			t.UsedAt = &used
			m.passwords[userID] = passwordHash
			return nil
		}
	}
	return errors.New("not found")
}

func (m *mockResetRepo) activeTokens(userID int64) int {
	n := 0
	now := time.Now()
	for _, t := range m.tokens {
		if t.UserID == userID && t.UsedAt == nil && t.ExpiresAt.After(now) {
			n++
		}
	}
	return n
}

type mockEmailSender struct {
	sentTo   []string
	lastLink string
	lastTTL  time.Duration
}

func (m *mockEmailSender) SendPasswordReset(_ context.Context, to, resetLink string, ttl time.Duration) error {
	m.sentTo = append(m.sentTo, to)
	m.lastLink = resetLink
	m.lastTTL = ttl
	return nil
}

func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	idx := strings.Index(link, "token=")
	if idx < 0 {
		t.Fatalf("в ссылке нет токена: %q", link)
	}
	return link[idx+len("token="):]
}

func TestRequestReset_UnknownEmail(t *testing.T) {
	repo := newMockResetRepo()
	sender := &mockEmailSender{}
	service := NewPasswordService(repo, sender, "http://localhost:3000", 30*time.Minute)

	link, err := service.RequestReset(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("запрос для несуществующего email должен отвечать без ошибки: %v", err)
	}
	if link != "" {
		t.Fatal("для несуществующего email ссылка не должна создаваться")
	}
	if len(sender.sentTo) != 0 {
		t.Fatal("письмо не должно отправляться на несуществующий email")
	}
}

func TestRequestReset_CreatesTokenAndSendsEmail(t *testing.T) {
	repo := newMockResetRepo()
	repo.usersByEmail["user@example.com"] = 7
	sender := &mockEmailSender{}
	service := NewPasswordService(repo, sender, "http://localhost:3000", 30*time.Minute)

	link, err := service.RequestReset(context.Background(), " User@Example.com ")
	if err != nil {
		t.Fatalf("ошибка запроса сброса: %v", err)
	}
	if link == "" || !strings.Contains(link, "mode=reset&token=") {
		t.Fatalf("неожиданная ссылка: %q", link)
	}
	if len(sender.sentTo) != 1 || sender.sentTo[0] != "user@example.com" {
		t.Fatalf("письмо ушло не туда: %v", sender.sentTo)
	}
	if sender.lastTTL != 30*time.Minute {
		t.Fatalf("в письмо должен уходить настроенный TTL токена, получено %v", sender.lastTTL)
	}

	raw := tokenFromLink(t, link)
	if len(raw) != 64 {
		t.Fatalf("ожидался hex-токен на 32 байта, получено %d символов", len(raw))
	}
	if _, err := repo.GetByHash(context.Background(), raw); err == nil {
		t.Fatal("в хранилище не должен лежать сырой токен")
	}
	if repo.activeTokens(7) != 1 {
		t.Fatalf("ожидался один активный токен, получено %d", repo.activeTokens(7))
	}
}

func TestRequestReset_SupersedesPreviousToken(t *testing.T) {
	repo := newMockResetRepo()
	repo.usersByEmail["user@example.com"] = 7
	sender := &mockEmailSender{}
	service := NewPasswordService(repo, sender, "http://localhost:3000", 30*time.Minute)

	firstLink, _ := service.RequestReset(context.Background(), "user@example.com")
	secondLink, _ := service.RequestReset(context.Background(), "user@example.com")

	if repo.activeTokens(7) != 1 {
		t.Fatalf("после повторного запроса активным должен остаться один токен, получено %d", repo.activeTokens(7))
	}

	// Старый токен больше не работает.
	firstToken := tokenFromLink(t, firstLink)
	err := service.ResetPassword(context.Background(), firstToken, "newpassword1")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("вытесненный токен должен отклоняться как невалидный, получено %v", err)
	}

	// Новый — работает.
	secondToken := tokenFromLink(t, secondLink)
	if err := service.ResetPassword(context.Background(), secondToken, "newpassword1"); err != nil {
		t.Fatalf("свежий токен должен приниматься: %v", err)
	}
}

func TestResetPassword_Success(t *testing.T) {
	repo := newMockResetRepo()
	repo.usersByEmail["user@example.com"] = 7
	sender := &mockEmailSender{}
	service := NewPasswordService(repo, sender, "http://localhost:3000", 30*time.Minute)

	link, _ := service.RequestReset(context.Background(), "user@example.com")
	token := tokenFromLink(t, link)

	if err := service.ResetPassword(context.Background(), token, "newpassword1"); err != nil {
		t.Fatalf("ошибка сброса пароля: %v", err)
	}

	hash, ok := repo.passwords[7]
	if !ok {
		t.Fatal("пароль не записан")
	}
	if !utils.CheckPasswordHash("newpassword1", hash) {
		t.Fatal("записан хеш не от нового пароля")
	}
}

func TestResetPassword_SingleUse(t *testing.T) {
	repo := newMockResetRepo()
	repo.usersByEmail["user@example.com"] = 7
	sender := &mockEmailSender{}
	service := NewPasswordService(repo, sender, "http://localhost:3000", 30*time.Minute)

	link, _ := service.RequestReset(context.Background(), "user@example.com")
	token := tokenFromLink(t, link)

	if err := service.ResetPassword(context.Background(), token, "newpassword1"); err != nil {
		t.Fatalf("первый сброс должен пройти: %v", err)
	}
	err := service.ResetPassword(context.Background(), token, "otherpassword2")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("повторное использование должно отклоняться, получено %v", err)
	}
	if !utils.CheckPasswordHash("newpassword1", repo.passwords[7]) {
		t.Fatal("повторный сброс не должен менять пароль")
	}
}

func TestResetPassword_Expired(t *testing.T) {
	repo := newMockResetRepo()
	repo.usersByEmail["user@example.com"] = 7
	sender := &mockEmailSender{}
	service := NewPasswordService(repo, sender, "http://localhost:3000", 30*time.Minute)

	link, _ := service.RequestReset(context.Background(), "user@example.com")
	token := tokenFromLink(t, link)

	// Сдвигаем часы сервиса за пределы TTL.
	service.now = func() time.Time { return time.Now().Add(31 * time.Minute) }

	err := service.ResetPassword(context.Background(), token, "newpassword1")
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("просроченный токен: ожидалось ErrTokenExpired, получено %v", err)
	}
}

func TestResetPassword_UnknownToken(t *testing.T) {
	repo := newMockResetRepo()
	sender := &mockEmailSender{}
	service := NewPasswordService(repo, sender, "http://localhost:3000", 30*time.Minute)

	err := service.ResetPassword(context.Background(), "deadbeef", "newpassword1")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("неизвестный токен: ожидалось ErrTokenInvalid, получено %v", err)
	}
}

func TestResetPassword_ShortPassword(t *testing.T) {
	repo := newMockResetRepo()
	sender := &mockEmailSender{}
	service := NewPasswordService(repo, sender, "http://localhost:3000", 30*time.Minute)

	err := service.ResetPassword(context.Background(), "any", "short")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("короткий пароль: ожидалось ErrPasswordTooShort, получено %v", err)
	}
}
