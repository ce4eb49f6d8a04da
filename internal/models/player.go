package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Player struct {
	ID          gocql.UUID `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	BirthDate   time.Time  `json:"birth_date"`
	Position    string     `json:"position"` // "gardien", "defenseur", "milieu", "attaquant"
	Category    string     `json:"category"` // "U13", "U15", "U17", "U20"
	Nationality string     `json:"nationality"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
