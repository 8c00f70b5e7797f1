package models

import "time"

type Certification struct {
	ID        int64  `json:"id"`
	ProfileID int64  `json:"profile_id"`
	Title     string `json:"title"`
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	URL       string `json:"url"`

	BadgeColor *string `json:"badge_color,omitempty"`
	IconURL    *string `json:"icon_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type CreateCertificationRequest struct {
	Title      string  `json:"title"`
	FileName   string  `json:"file_name"`
	MimeType   string  `json:"mime_type"`
	URL        string  `json:"url"`
	BadgeColor *string `json:"badge_color,omitempty"`
	IconURL    *string `json:"icon_url,omitempty"`
}
