package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts possibles d'une demande de visite
const (
	VisitStatusPending   = "pending"
	VisitStatusConfirmed = "confirmed"
	VisitStatusCancelled = "cancelled"
)

// VisitRequest — demande de visite de l'académie (famille, recruteur, partenaire)
type VisitRequest struct {
	ID            gocql.UUID `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	VisitorType   string     `json:"visitor_type"` // "famille", "recruteur", "partenaire"
	PreferredDate time.Time  `json:"preferred_date"`
	Message       string     `json:"message,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}
