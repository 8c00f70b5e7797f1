package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshelf/internal/models"
	"workshelf/internal/utils"
)

// Мок-репозиторий пользователей (заглушка)
type mockUserRepo struct {
	users    map[string]*models.User
	profiles map[int]*models.Profile
	nextID   int
	lastUser *models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:    make(map[string]*models.User),
		profiles: make(map[int]*models.Profile),
	}
}

func (m *mockUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	_, exists := m.users[email]
	return exists, nil
}

func (m *mockUserRepo) CreateUserWithProfile(_ context.Context, user *models.User, displayName string) (*models.Profile, error) {
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = user
	m.lastUser = user

	profile := &models.Profile{
		ID:          int64(m.nextID),
		UserID:      user.ID,
		DisplayName: displayName,
		Theme:       "system",
		Locale:      "en",
	}
	m.profiles[user.ID] = profile
	return profile, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockUserRepo) UpdateUserPassword(_ context.Context, userID int, passwordHash string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return errors.New("not found")
}

func (m *mockUserRepo) UpdateUserEmail(_ context.Context, userID int, email string) error {
	for old, u := range m.users {
		if u.ID == userID {
			delete(m.users, old)
			u.Email = email
			m.users[email] = u
			return nil
		}
	}
	return errors.New("not found")
}

func (m *mockUserRepo) GetUserCardByEmail(_ context.Context, email string) (*models.UserProfileCard, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, errors.New("not found")
	}
	p := m.profiles[u.ID]
	return &models.UserProfileCard{ID: u.ID, Email: u.Email, DisplayName: p.DisplayName, Theme: p.Theme, Locale: p.Locale}, nil
}

func (m *mockUserRepo) GetUserCardByID(_ context.Context, id int) (*models.UserProfileCard, error) {
	for _, u := range m.users {
		if u.ID == id {
			p := m.profiles[u.ID]
			return &models.UserProfileCard{ID: u.ID, Email: u.Email, DisplayName: p.DisplayName, Theme: p.Theme, Locale: p.Locale}, nil
		}
	}
	return nil, errors.New("not found")
}

// Мок-репозиторий профилей поверх того же хранилища
type mockProfileRepo struct {
	users *mockUserRepo
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID int) (*models.Profile, error) {
	p, ok := m.users.profiles[userID]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, profileID int64) (*models.Profile, error) {
	for _, p := range m.users.profiles {
		if p.ID == profileID {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockProfileRepo) GetProfileIDByUserID(_ context.Context, userID int) (int64, error) {
	p, ok := m.users.profiles[userID]
	if !ok {
		return 0, errors.New("not found")
	}
	return p.ID, nil
}

func (m *mockProfileRepo) UpdateFields(_ context.Context, userID int, _ *models.UpdateProfileRequest, _, _ *time.Time) (*models.Profile, error) {
	return m.GetByUserID(context.Background(), userID)
}

func (m *mockProfileRepo) ClearAvatar(_ context.Context, userID int) error {
	p, ok := m.users.profiles[userID]
	if !ok {
		return errors.New("not found")
	}
	p.AvatarURL = nil
	return nil
}

func (m *mockProfileRepo) GetAbout(_ context.Context, profileID int64) (*string, error) {
	p, err := m.GetByID(context.Background(), profileID)
	if err != nil {
		return nil, err
	}
	return p.About, nil
}

func (m *mockProfileRepo) SetAbout(_ context.Context, profileID int64, about *string) error {
	p, err := m.GetByID(context.Background(), profileID)
	if err != nil {
		return err
	}
	p.About = about
	return nil
}

func newTestAuthService() (*AuthService, *mockUserRepo) {
	repo := newMockUserRepo()
	return NewAuthService(repo, &mockProfileRepo{users: repo}), repo
}

func TestRegisterUser(t *testing.T) {
	service, repo := newTestAuthService()

	user, profile, err := service.RegisterUser(context.Background(), " Test@Example.com ", "secret123", "Tester")
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}
	if user.Email != "test@example.com" {
		t.Fatalf("email должен нормализоваться, получено %q", user.Email)
	}
	if repo.lastUser == nil || repo.lastUser.PasswordHash == "" {
		t.Fatal("пароль не захеширован или пользователь не сохранён")
	}
	if repo.lastUser.PasswordHash == "secret123" {
		t.Fatal("пароль сохранён открытым текстом")
	}
	if profile == nil || profile.DisplayName != "Tester" {
		t.Fatal("профиль должен создаваться вместе с пользователем")
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	service, _ := newTestAuthService()

	if _, _, err := service.RegisterUser(context.Background(), "test@example.com", "secret123", "First"); err != nil {
		t.Fatalf("первая регистрация должна пройти: %v", err)
	}
	_, _, err := service.RegisterUser(context.Background(), "TEST@example.com", "secret123", "Second")
	if !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("повторная регистрация: ожидалось ErrEmailInUse, получено %v", err)
	}
}

func TestRegisterUser_ShortPassword(t *testing.T) {
	service, _ := newTestAuthService()

	_, _, err := service.RegisterUser(context.Background(), "test@example.com", "short", "Tester")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("короткий пароль: ожидалось ErrPasswordTooShort, получено %v", err)
	}
}

func TestLoginUser_Success(t *testing.T) {
	service, _ := newTestAuthService()

	if _, _, err := service.RegisterUser(context.Background(), "test@example.com", "secret123", "Tester"); err != nil {
		t.Fatalf("регистрация: %v", err)
	}

	token, user, profile, err := service.LoginUser(context.Background(), "test@example.com", "secret123", "test-secret", 15*time.Minute)
	if err != nil {
		t.Fatalf("ошибка входа: %v", err)
	}
	if token == "" {
		t.Fatal("access-токен пустой")
	}
	if user == nil || profile == nil {
		t.Fatal("вход должен возвращать пользователя с профилем")
	}
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	service, _ := newTestAuthService()

	if _, _, err := service.RegisterUser(context.Background(), "test@example.com", "secret123", "Tester"); err != nil {
		t.Fatalf("регистрация: %v", err)
	}

	// Неверный пароль и несуществующий email дают одну и ту же ошибку.
	_, _, _, err := service.LoginUser(context.Background(), "test@example.com", "wrongpass", "test-secret", 15*time.Minute)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("неверный пароль: ожидалось ErrInvalidCredentials, получено %v", err)
	}
	_, _, _, err = service.LoginUser(context.Background(), "nobody@example.com", "secret123", "test-secret", 15*time.Minute)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("неизвестный email: ожидалось ErrInvalidCredentials, получено %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	service, repo := newTestAuthService()

	user, _, err := service.RegisterUser(context.Background(), "test@example.com", "secret123", "Tester")
	if err != nil {
		t.Fatalf("регистрация: %v", err)
	}

	if err := service.ChangePassword(context.Background(), user.ID, "secret123", "newsecret1"); err != nil {
		t.Fatalf("смена пароля: %v", err)
	}
	if !utils.CheckPasswordHash("newsecret1", repo.lastUser.PasswordHash) {
		t.Fatal("новый пароль не записан")
	}

	err = service.ChangePassword(context.Background(), user.ID, "wrongold", "othersecret1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("неверный старый пароль: ожидалось ErrInvalidCredentials, получено %v", err)
	}
}
