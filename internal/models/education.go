package models

import "time"

type Education struct {
	ID        int64 `json:"id"`
	ProfileID int64 `json:"profile_id"`

	Education     *string `json:"education,omitempty"`
	School        string  `json:"school"`
	SchoolLogoURL *string `json:"school_logo_url,omitempty"`
	Degree        *string `json:"degree,omitempty"`

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsCurrent bool       `json:"is_current"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaveEducationRequest struct {
	Education     *string `json:"education,omitempty"`
	School        string  `json:"school"`
	SchoolLogoURL *string `json:"school_logo_url,omitempty"`
	Degree        *string `json:"degree,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date,omitempty"`
	IsCurrent     bool    `json:"is_current"`
}
