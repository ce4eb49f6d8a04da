package academie

import (
	"log"
	"net/http"
	"os"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"
	"academie_back_end/internal/services"
	"academie_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// POST /api/applications — candidature publique avec documents en multipart
func SubmitApplication(c *gin.Context) {
	var input struct {
		FirstName   string `form:"first_name" binding:"required"`
		LastName    string `form:"last_name" binding:"required"`
		Email       string `form:"email" binding:"required,email"`
		Phone       string `form:"phone" binding:"required"`
		BirthDate   string `form:"birth_date" binding:"required"`
		Position    string `form:"position" binding:"required"`
		CurrentClub string `form:"current_club"`
		Message     string `form:"message"`
		VideoURL    string `form:"video_url"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	birthDate, err := time.Parse("2006-01-02", input.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date de naissance invalide"})
		return
	}

	// Documents joints (certificat médical, licence...) stockés dans MinIO
	documentPaths := []string{}
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["documents"] {
			path, err := services.UploadFile(c.Request.Context(), "applications", file)
			if err != nil {
				log.Printf("⚠️ Document non stocké: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur stockage document"})
				return
			}
			documentPaths = append(documentPaths, path)
		}
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	app := models.Application{
		ID:            gocql.TimeUUID(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		BirthDate:     birthDate,
		Position:      input.Position,
		CurrentClub:   input.CurrentClub,
		Message:       input.Message,
		DocumentPaths: documentPaths,
		VideoURL:      input.VideoURL,
		Status:        models.ApplicationStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := session.Query(
		`INSERT INTO applications (application_id, first_name, last_name, email, phone,
			birth_date, position, current_club, message, document_paths, video_url, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.ID, app.FirstName, app.LastName, app.Email, app.Phone,
		app.BirthDate, app.Position, app.CurrentClub, app.Message,
		app.DocumentPaths, app.VideoURL, app.Status, app.CreatedAt,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement candidature"})
		return
	}

	// Accusé de réception en arrière-plan
	go func() {
		html := utils.GenerateApplicationReceivedHTML(app)
		if err := utils.SendEmail(app.Email, "Candidature reçue — Académie Étoile", html, nil); err != nil {
			log.Printf("❌ Accusé de réception non envoyé à %s: %v", app.Email, err)
		}
	}()

	log.Printf("📋 Candidature reçue: %s %s (%s)", app.FirstName, app.LastName, app.Position)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Candidature enregistrée",
		"id":      app.ID.String(),
	})
}

// GET /api/admin/applications — revue des candidatures
func ListApplications(c *gin.Context) {
	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	status := c.Query("status")

	iter := session.Query(
		`SELECT application_id, first_name, last_name, email, phone, birth_date,
			position, current_club, message, document_paths, video_url, status, created_at
		 FROM applications`,
	).WithContext(c.Request.Context()).Iter()

	apps := []models.Application{}
	var a models.Application
	for iter.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.BirthDate,
		&a.Position, &a.CurrentClub, &a.Message, &a.DocumentPaths, &a.VideoURL, &a.Status, &a.CreatedAt) {
		if status != "" && a.Status != status {
			a = models.Application{}
			continue
		}
		apps = append(apps, a)
		a = models.Application{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture candidatures"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// GET /api/admin/applications/:id — détail avec documents résolus en URLs.
// ResolveFileURL est la seule source de vérité chemin → URL affichable.
func GetApplication(c *gin.Context) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var a models.Application
	if err := session.Query(
		`SELECT application_id, first_name, last_name, email, phone, birth_date,
			position, current_club, message, document_paths, video_url, status, created_at
		 FROM applications WHERE application_id = ?`, gocql.UUID(appID),
	).WithContext(c.Request.Context()).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.BirthDate,
		&a.Position, &a.CurrentClub, &a.Message, &a.DocumentPaths, &a.VideoURL, &a.Status, &a.CreatedAt,
	); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidature introuvable"})
		return
	}

	view := models.ApplicationView{
		Application:  a,
		DocumentURLs: services.ResolveFileURLs(c.Request.Context(), a.DocumentPaths),
	}

	c.JSON(http.StatusOK, view)
}

// PUT /api/admin/applications/:id/status
func UpdateApplicationStatus(c *gin.Context) {
	appID, err := uuid.Parse(c.Param("id"))
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
	case models.ApplicationStatusPending, models.ApplicationStatusReviewed,
		models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
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
		`UPDATE applications SET status = ? WHERE application_id = ?`,
		input.Status, gocql.UUID(appID),
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour statut"})
		return
	}

	log.Printf("📋 Candidature %s → %s", appID, input.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "status": input.Status})
}

func notificationRecipient() string {
	to := os.Getenv("ACADEMY_NOTIFICATION_EMAIL")
	if to == "" {
		to = "contact@academie-etoile.sn"
	}
	return to
}
