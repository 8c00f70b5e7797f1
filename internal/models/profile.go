package models

import "time"

type Profile struct {
	ID          int64   `json:"id"`
	UserID      int     `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Theme       string  `json:"theme"`
	Locale      string  `json:"locale"`
	AvatarURL   *string `json:"avatar_url,omitempty"`

	FullName    *string    `json:"full_name,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	Nationality *string    `json:"nationality,omitempty"`

	EmploymentStatus      *string    `json:"employment_status,omitempty"`
	CurrentTitle          *string    `json:"current_title,omitempty"`
	CurrentCompany        *string    `json:"current_company,omitempty"`
	CurrentCompanyLogoURL *string    `json:"current_company_logo_url,omitempty"`
	CurrentClient         *string    `json:"current_client,omitempty"`
	CurrentClientLogoURL  *string    `json:"current_client_logo_url,omitempty"`
	CurrentRoleStart      *time.Time `json:"current_role_start,omitempty"`

	MaritalStatus *string `json:"marital_status,omitempty"`
	Dependents    *int    `json:"dependents,omitempty"`

	About *string `json:"about,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest — частичное обновление: nil-поля не трогаем.
type UpdateProfileRequest struct {
	DisplayName           *string `json:"display_name,omitempty"`
	Theme                 *string `json:"theme,omitempty"`
	Locale                *string `json:"locale,omitempty"`
	AvatarURL             *string `json:"avatar_url,omitempty"`
	FullName              *string `json:"full_name,omitempty"`
	BirthDate             *string `json:"birth_date,omitempty"`
	Gender                *string `json:"gender,omitempty"`
	Nationality           *string `json:"nationality,omitempty"`
	EmploymentStatus      *string `json:"employment_status,omitempty"`
	CurrentTitle          *string `json:"current_title,omitempty"`
	CurrentCompany        *string `json:"current_company,omitempty"`
	CurrentCompanyLogoURL *string `json:"current_company_logo_url,omitempty"`
	CurrentClient         *string `json:"current_client,omitempty"`
	CurrentClientLogoURL  *string `json:"current_client_logo_url,omitempty"`
	CurrentRoleStart      *string `json:"current_role_start,omitempty"`
	MaritalStatus         *string `json:"marital_status,omitempty"`
	Dependents            *int    `json:"dependents,omitempty"`
}

// ProfileTileResponse — данные для быстрой плитки профиля на дашборде.
type ProfileTileResponse struct {
	FullName           string   `json:"full_name"`
	Age                *float64 `json:"age"`
	MaritalStatus      *string  `json:"marital_status"`
	EmploymentStatus   *string  `json:"employment_status"`
	CurrentTitle       *string  `json:"current_title"`
	YearsInCurrentRole *float64 `json:"years_in_current_role"`
	YearsTotal         *float64 `json:"years_total"`
	ExperienceLabel    string   `json:"experience_label"`
}

// ProfileOptions — допустимые значения enum-полей профиля.
type ProfileOptions struct {
	Gender           []string `json:"gender"`
	MaritalStatus    []string `json:"marital_status"`
	EmploymentStatus []string `json:"employment_status"`
}
