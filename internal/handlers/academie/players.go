package academie

import (
	"log"
	"net/http"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"
	"academie_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// GET /api/players — effectif public, filtrable par catégorie
func ListPlayers(c *gin.Context) {
	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	category := c.Query("category")

	iter := session.Query(
		`SELECT player_id, first_name, last_name, birth_date, position, category,
			nationality, photo_url, bio, is_active, created_at, updated_at
		 FROM players`,
	).WithContext(c.Request.Context()).Iter()

	players := []models.Player{}
	var p models.Player
	for iter.Scan(&p.ID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Position, &p.Category,
		&p.Nationality, &p.PhotoURL, &p.Bio, &p.IsActive, &p.CreatedAt, &p.UpdatedAt) {
		if !p.IsActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		players = append(players, p)
		p = models.Player{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture joueurs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": players})
}

// GET /api/players/:id
func GetPlayer(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var p models.Player
	if err := session.Query(
		`SELECT player_id, first_name, last_name, birth_date, position, category,
			nationality, photo_url, bio, is_active, created_at, updated_at
		 FROM players WHERE player_id = ?`, gocql.UUID(playerID),
	).WithContext(c.Request.Context()).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Position, &p.Category,
		&p.Nationality, &p.PhotoURL, &p.Bio, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Joueur introuvable"})
		return
	}

	// La photo est stockée comme chemin objet, on la résout à la lecture
	if p.PhotoURL != "" {
		if resolved, err := services.ResolveFileURL(c.Request.Context(), p.PhotoURL); err == nil {
			p.PhotoURL = resolved
		}
	}

	c.JSON(http.StatusOK, p)
}

// POST /api/admin/players — création avec photo en multipart
func CreatePlayer(c *gin.Context) {
	var input struct {
		FirstName   string `form:"first_name" binding:"required"`
		LastName    string `form:"last_name" binding:"required"`
		BirthDate   string `form:"birth_date" binding:"required"` // format 2006-01-02
		Position    string `form:"position" binding:"required"`
		Category    string `form:"category" binding:"required"`
		Nationality string `form:"nationality"`
		Bio         string `form:"bio"`
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

	photoPath := ""
	if file, err := c.FormFile("photo"); err == nil {
		photoPath, err = services.UploadFile(c.Request.Context(), "players", file)
		if err != nil {
			log.Printf("⚠️ Photo non stockée: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur stockage photo"})
			return
		}
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	now := time.Now()
	player := models.Player{
		ID:          gocql.TimeUUID(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		BirthDate:   birthDate,
		Position:    input.Position,
		Category:    input.Category,
		Nationality: input.Nationality,
		PhotoURL:    photoPath,
		Bio:         input.Bio,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := session.Query(
		`INSERT INTO players (player_id, first_name, last_name, birth_date, position, category,
			nationality, photo_url, bio, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		player.ID, player.FirstName, player.LastName, player.BirthDate, player.Position,
		player.Category, player.Nationality, player.PhotoURL, player.Bio, true, now, now,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création joueur"})
		return
	}

	log.Printf("✅ Joueur créé: %s %s (%s)", player.FirstName, player.LastName, player.Category)
	c.JSON(http.StatusCreated, gin.H{"player": player})
}

// PUT /api/admin/players/:id
func UpdatePlayer(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	var input struct {
		Position string `json:"position"`
		Category string `json:"category"`
		Bio      string `json:"bio"`
		IsActive *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Relecture de l'existant pour ne réécrire que les champs fournis
	var p models.Player
	if err := session.Query(
		`SELECT position, category, bio, is_active FROM players WHERE player_id = ?`,
		gocql.UUID(playerID),
	).WithContext(c.Request.Context()).Scan(&p.Position, &p.Category, &p.Bio, &p.IsActive); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Joueur introuvable"})
		return
	}

	if input.Position != "" {
		p.Position = input.Position
	}
	if input.Category != "" {
		p.Category = input.Category
	}
	if input.Bio != "" {
		p.Bio = input.Bio
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if err := session.Query(
		`UPDATE players SET position = ?, category = ?, bio = ?, is_active = ?, updated_at = ?
		 WHERE player_id = ?`,
		p.Position, p.Category, p.Bio, p.IsActive, time.Now(), gocql.UUID(playerID),
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour joueur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joueur mis à jour"})
}

// DELETE /api/admin/players/:id
func DeletePlayer(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(
		`DELETE FROM players WHERE player_id = ?`, gocql.UUID(playerID),
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression joueur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joueur supprimé"})
}
