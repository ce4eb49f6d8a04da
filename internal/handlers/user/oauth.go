package user

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"
	"academie_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/markbates/goth/gothic"
)

type ctxKey string

const ProviderKey ctxKey = "provider"

// BeginAuth démarre le flux OAuth (Google ou Facebook)
func BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// CallbackAuth termine le flux OAuth : crée le compte au premier passage
// puis retourne un JWT comme pour un login classique
func CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	firstName, lastName := gothUser.FirstName, gothUser.LastName
	if firstName == "" && gothUser.Name != "" {
		firstName, lastName = splitFullName(gothUser.Name)
	}

	loginOAuthUser(c, gothUser.Email, firstName, lastName, gothUser.Provider)
}

// splitFullName découpe "Prénom Nom" quand le provider ne fournit que le nom complet
func splitFullName(name string) (string, string) {
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// loginOAuthUser retrouve ou crée le compte lié à un profil OAuth vérifié,
// puis répond avec un JWT comme pour un login classique
func loginOAuthUser(c *gin.Context, email, firstName, lastName, provider string) {
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Profil OAuth sans email"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := models.User{
		Email:    email,
		Role:     "customer",
		Provider: provider,
	}

	// Compte existant ?
	var userID gocql.UUID
	if err := session.Query(`SELECT user_id FROM users_by_email WHERE email = ?`, email).
		WithContext(ctx).Scan(&userID); err == nil {
		user.ID = userID.String()
	} else {
		// Premier passage : création du compte depuis le profil OAuth
		userID = gocql.TimeUUID()
		if err := session.Query(
			`INSERT INTO users (user_id, email, password, first_name, last_name, phone, role, provider, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			userID, email, "", firstName, lastName, "",
			"customer", provider, time.Now(),
		).WithContext(ctx).Exec(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création compte"})
			return
		}
		if err := session.Query(
			`INSERT INTO users_by_email (email, user_id) VALUES (?, ?)`,
			email, userID,
		).WithContext(ctx).Exec(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création compte"})
			return
		}

		user.ID = userID.String()
		user.FirstName = firstName
		user.LastName = lastName
		log.Printf("✅ Compte OAuth créé: %s (%s)", email, provider)
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
