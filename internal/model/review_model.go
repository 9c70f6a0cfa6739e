package model

import "time"

type Review struct {
	ReviewID  string     `json:"review_id"`
	UserID    string     `json:"user_id"`
	ProductID string     `json:"product_id"`
	Rating    int        `json:"rating"` // 1..5
	Comment   string     `json:"comment,omitempty"`
	UserName  string     `json:"user_name,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
