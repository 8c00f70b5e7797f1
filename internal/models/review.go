package models

import "time"

type Review struct {
	ID             int64     `json:"id"`
	ProfileID      int64     `json:"profile_id"`
	CompanyName    string    `json:"company_name"`
	CompanyLogoURL *string   `json:"company_logo_url,omitempty"`
	FileName       string    `json:"file_name"`
	Description    string    `json:"description"`
	URL            string    `json:"url"`
	MimeType       string    `json:"mime_type"`
	ReviewDate     time.Time `json:"review_date"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateReviewRequest struct {
	CompanyName    string  `json:"company_name"`
	CompanyLogoURL *string `json:"company_logo_url,omitempty"`
	FileName       string  `json:"file_name"`
	Description    string  `json:"description"`
	URL            string  `json:"url"`
	MimeType       string  `json:"mime_type"`
	ReviewDate     string  `json:"review_date"`
}
