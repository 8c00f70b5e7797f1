package repository

import (
	"context"
	"fmt"
	"strings"
	"time"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, user_id, display_name, theme, locale, avatar_url,
	full_name, birth_date, gender, nationality,
	employment_status, current_title, current_company, current_company_logo_url,
	current_client, current_client_logo_url, current_role_start,
	marital_status, dependents, about, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.Theme, &p.Locale, &p.AvatarURL,
		&p.FullName, &p.BirthDate, &p.Gender, &p.Nationality,
		&p.EmploymentStatus, &p.CurrentTitle, &p.CurrentCompany, &p.CurrentCompanyLogoURL,
		&p.CurrentClient, &p.CurrentClientLogoURL, &p.CurrentRoleStart,
		&p.MaritalStatus, &p.Dependents, &p.About, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int) (*models.Profile, error) {
	logger.Log.Debug("Получение профиля по user_id (repo)", zap.Int("user_id", userID))
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	return scanProfile(row)
}

func (r *ProfileRepository) GetByID(ctx context.Context, profileID int64) (*models.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, profileID)
	return scanProfile(row)
}

// GetProfileIDByUserID — для проверки владения: profileId из пути обязан
// принадлежать авторизованному пользователю.
func (r *ProfileRepository) GetProfileIDByUserID(ctx context.Context, userID int) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM profiles WHERE user_id = $1`, userID).Scan(&id)
	return id, err
}

// UpdateFields — частичное обновление: собираем SET только из ненулевых полей.
func (r *ProfileRepository) UpdateFields(ctx context.Context, userID int, input *models.UpdateProfileRequest, birthDate, roleStart *time.Time) (*models.Profile, error) {
	logger.Log.Debug("Обновление профиля (repo)", zap.Int("user_id", userID))

	set := make([]string, 0, 16)
	args := make([]any, 0, 16)
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if input.DisplayName != nil {
		add("display_name", *input.DisplayName)
	}
	if input.Theme != nil {
		add("theme", *input.Theme)
	}
	if input.Locale != nil {
		add("locale", *input.Locale)
	}
	if input.AvatarURL != nil {
		add("avatar_url", *input.AvatarURL)
	}
	if input.FullName != nil {
		add("full_name", *input.FullName)
	}
	if input.BirthDate != nil {
		add("birth_date", birthDate)
	}
	if input.Gender != nil {
		add("gender", *input.Gender)
	}
	if input.Nationality != nil {
		add("nationality", *input.Nationality)
	}
	if input.EmploymentStatus != nil {
		add("employment_status", *input.EmploymentStatus)
	}
	if input.CurrentTitle != nil {
		add("current_title", *input.CurrentTitle)
	}
	if input.CurrentCompany != nil {
		add("current_company", *input.CurrentCompany)
	}
	if input.CurrentCompanyLogoURL != nil {
		add("current_company_logo_url", *input.CurrentCompanyLogoURL)
	}
	if input.CurrentClient != nil {
		add("current_client", *input.CurrentClient)
	}
	if input.CurrentClientLogoURL != nil {
		add("current_client_logo_url", *input.CurrentClientLogoURL)
	}
	if input.CurrentRoleStart != nil {
		add("current_role_start", roleStart)
	}
	if input.MaritalStatus != nil {
		add("marital_status", *input.MaritalStatus)
	}
	if input.Dependents != nil {
		add("dependents", *input.Dependents)
	}

	if len(set) == 0 {
		return r.GetByUserID(ctx, userID)
	}

	set = append(set, "updated_at = now()")
	args = append(args, userID)
	query := fmt.Sprintf(
		`UPDATE profiles SET %s WHERE user_id = $%d RETURNING `+profileColumns,
		strings.Join(set, ", "), len(args),
	)

	p, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		logger.Log.Error("Ошибка обновления профиля (repo)", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) ClearAvatar(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE profiles SET avatar_url = NULL, updated_at = now() WHERE user_id = $1`, userID)
	if err != nil {
		logger.Log.Error("Ошибка сброса аватара (repo)", zap.Error(err), zap.Int("user_id", userID))
	}
	return err
}

func (r *ProfileRepository) GetAbout(ctx context.Context, profileID int64) (*string, error) {
	var about *string
	err := r.db.QueryRow(ctx, `SELECT about FROM profiles WHERE id = $1`, profileID).Scan(&about)
	return about, err
}

func (r *ProfileRepository) SetAbout(ctx context.Context, profileID int64, about *string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE profiles SET about = $1, updated_at = now() WHERE id = $2`, about, profileID)
	if err != nil {
		logger.Log.Error("Ошибка обновления about (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
	}
	return err
}
