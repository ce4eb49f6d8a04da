package academie

import (
	"log"
	"net/http"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"
	"academie_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// POST /api/visits — demande de visite publique
func SubmitVisitRequest(c *gin.Context) {
	var input struct {
		FirstName     string `json:"first_name" binding:"required"`
		LastName      string `json:"last_name" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		Phone         string `json:"phone" binding:"required"`
		VisitorType   string `json:"visitor_type" binding:"required"`
		PreferredDate string `json:"preferred_date" binding:"required"` // format 2006-01-02
		Message       string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	preferredDate, err := time.Parse("2006-01-02", input.PreferredDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date souhaitée invalide"})
		return
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	visit := models.VisitRequest{
		ID:            gocql.TimeUUID(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		VisitorType:   input.VisitorType,
		PreferredDate: preferredDate,
		Message:       input.Message,
		Status:        models.VisitStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := session.Query(
		`INSERT INTO visit_requests (visit_id, first_name, last_name, email, phone,
			visitor_type, preferred_date, message, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		visit.ID, visit.FirstName, visit.LastName, visit.Email, visit.Phone,
		visit.VisitorType, visit.PreferredDate, visit.Message, visit.Status, visit.CreatedAt,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement demande"})
		return
	}

	// Notification interne en arrière-plan
	go func() {
		html := utils.GenerateVisitRequestHTML(visit)
		if err := utils.SendEmail(notificationRecipient(), "Nouvelle demande de visite", html, nil); err != nil {
			log.Printf("❌ Notification visite non envoyée: %v", err)
		}
	}()

	log.Printf("🏟️ Demande de visite: %s %s (%s)", visit.FirstName, visit.LastName, visit.VisitorType)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Demande enregistrée, nous vous recontacterons",
		"id":      visit.ID.String(),
	})
}

// GET /api/admin/visits
func ListVisitRequests(c *gin.Context) {
	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	status := c.Query("status")

	iter := session.Query(
		`SELECT visit_id, first_name, last_name, email, phone, visitor_type,
			preferred_date, message, status, created_at
		 FROM visit_requests`,
	).WithContext(c.Request.Context()).Iter()

	visits := []models.VisitRequest{}
	var v models.VisitRequest
	for iter.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone, &v.VisitorType,
		&v.PreferredDate, &v.Message, &v.Status, &v.CreatedAt) {
		if status != "" && v.Status != status {
			v = models.VisitRequest{}
			continue
		}
		visits = append(visits, v)
		v = models.VisitRequest{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture demandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visits": visits})
}

// PUT /api/admin/visits/:id/status
func UpdateVisitStatus(c *gin.Context) {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	switch input.Status {
	case models.VisitStatusPending, models.VisitStatusConfirmed, models.VisitStatusCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
		return
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(
		`UPDATE visit_requests SET status = ? WHERE visit_id = ?`,
		input.Status, gocql.UUID(visitID),
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour statut"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "status": input.Status})
}
