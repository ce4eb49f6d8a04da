package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts possibles d'une candidature
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application — candidature d'un joueur pour rejoindre l'académie
type Application struct {
	ID            gocql.UUID `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	BirthDate     time.Time  `json:"birth_date"`
	Position      string     `json:"position"`
	CurrentClub   string     `json:"current_club,omitempty"`
	Message       string     `json:"message,omitempty"`
	DocumentPaths []string   `json:"document_paths,omitempty"` // chemins MinIO, résolus en URLs à la lecture
	VideoURL      string     `json:"video_url,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ApplicationView — candidature dont les documents ont été résolus en URLs affichables
type ApplicationView struct {
	Application
	DocumentURLs []string `json:"document_urls"`
}
