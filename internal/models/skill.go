package models

import "time"

type Skill struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	Name        string    `json:"name"`
	Proficiency int       `json:"proficiency"`
	Icon        *string   `json:"icon,omitempty"`
	Position    int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SkillInput — элемент полного списка при replace-all записи.
// ID == 0 означает новую строку.
type SkillInput struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Proficiency int     `json:"proficiency"`
	Icon        *string `json:"icon,omitempty"`
	Order       *int    `json:"order,omitempty"`
}
