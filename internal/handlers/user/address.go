package user

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// GET /api/addresses/mine
func ListMyAddresses(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	iter := session.Query(
		`SELECT address_id, label, address, is_default FROM addresses_by_user WHERE user_id = ?`,
		userID,
	).WithContext(ctx).Iter()

	results := []models.SavedAddress{}
	var (
		addressID   gocql.UUID
		label, data string
		isDefault   bool
	)
	for iter.Scan(&addressID, &label, &data, &isDefault) {
		saved := models.SavedAddress{
			ID:        addressID.String(),
			UserID:    userID,
			Label:     label,
			IsDefault: isDefault,
		}
		_ = json.Unmarshal([]byte(data), &saved.Address)
		results = append(results, saved)
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture adresses"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// POST /api/addresses
func CreateAddress(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Label   string         `json:"label"`
		Address models.Address `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	addressID := gocql.TimeUUID()
	data, _ := json.Marshal(input.Address)

	if err := session.Query(
		`INSERT INTO addresses_by_user (user_id, address_id, label, address, is_default)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, addressID, input.Label, string(data), false,
	).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'ajouter l'adresse"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Adresse créée",
		"id":      addressID.String(),
	})
}

// DELETE /api/addresses/:id
func DeleteAddress(c *gin.Context) {
	userID := c.GetString("user_id")

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := session.Query(
		`DELETE FROM addresses_by_user WHERE user_id = ? AND address_id = ?`,
		userID, gocql.UUID(addressID),
	).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Suppression impossible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adresse supprimée"})
}
