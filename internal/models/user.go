package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserResponse — пользователь вместе с профилем (без хеша пароля).
type UserResponse struct {
	ID      int      `json:"id"`
	Email   string   `json:"email"`
	Profile *Profile `json:"profile,omitempty"`
}

// UserProfileCard — короткая карточка для поиска по email / по id.
type UserProfileCard struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	DisplayName string    `json:"display_name"`
	Theme       string    `json:"theme"`
	Locale      string    `json:"locale"`
}
