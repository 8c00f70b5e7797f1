package models

import "time"

type Experience struct {
	ID        int64 `json:"id"`
	ProfileID int64 `json:"profile_id"`

	Title          string  `json:"title"`
	Company        string  `json:"company"`
	CompanyLogoURL *string `json:"company_logo_url,omitempty"`

	IsConsultancy bool    `json:"is_consultancy"`
	Client        *string `json:"client,omitempty"`
	ClientLogoURL *string `json:"client_logo_url,omitempty"`

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsCurrent bool       `json:"is_current"`

	Description *string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tasks        []ExperienceTask `json:"tasks"`
	Technologies []Technology     `json:"technologies"`
}

type ExperienceTask struct {
	ID           int64  `json:"id"`
	ExperienceID int64  `json:"experience_id"`
	Text         string `json:"text"`
	Position     int    `json:"order"`
}

// Technology — общий каталог технологий, строки расшариваются между опытами.
type Technology struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	IconURL *string `json:"icon_url,omitempty"`
}

// SaveExperienceRequest — создание или обновление опыта одним запросом.
// ID > 0 означает обновление существующей записи.
type SaveExperienceRequest struct {
	ID int64 `json:"id,omitempty"`

	Title          string  `json:"title"`
	Company        string  `json:"company"`
	CompanyLogoURL *string `json:"company_logo_url,omitempty"`

	IsConsultancy bool    `json:"is_consultancy"`
	Client        *string `json:"client,omitempty"`
	ClientLogoURL *string `json:"client_logo_url,omitempty"`

	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	IsCurrent bool    `json:"is_current"`

	Description *string `json:"description,omitempty"`

	Tasks        []string `json:"tasks"`
	Technologies []string `json:"technologies"`
}
