package model

import (
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	GameID    string    `json:"game_id"`
	Title     string    `json:"title"`
	Rating    int       `json:"rating"` // 1..5 stars
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url,omitempty"`
	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerUsername *string `json:"owner_username,omitempty"` // For display
	GameTitle     *string `json:"game_title,omitempty"`     // For display
}

func (r *Review) GetOwnerID() string { return r.OwnerID }
