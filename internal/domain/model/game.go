package model

import (
	"time"
)

// Game is owned exclusively by the user that created it. Deletion is a
// soft-delete flag so reviews keep a valid reference.
type Game struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CoverURL    *string   `json:"cover_url,omitempty"`
	IsDeleted   bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	OwnerUsername *string `json:"owner_username,omitempty"` // For display
}

func (g *Game) GetOwnerID() string { return g.OwnerID }
