package model

import "time"

type User struct {
	UserID       string     `json:"user_id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never JSON-encode
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
