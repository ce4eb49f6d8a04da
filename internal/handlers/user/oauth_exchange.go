package user

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"academie_back_end/internal/config"

	"github.com/gin-gonic/gin"
)

// GoogleExchangeLogin échange un code d'autorisation Google côté serveur
// (clients mobiles et SPA qui ne passent pas par le flux navigateur goth)
func GoogleExchangeLogin(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code manquant"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	token, err := config.GoogleOAuthConfig.Exchange(ctx, body.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Code Google invalide"})
		return
	}

	client := config.GoogleOAuthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération profil Google"})
		return
	}
	defer resp.Body.Close()

	var profile struct {
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Name       string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil || profile.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Profil Google invalide"})
		return
	}

	firstName, lastName := profile.GivenName, profile.FamilyName
	if firstName == "" && profile.Name != "" {
		firstName, lastName = splitFullName(profile.Name)
	}

	loginOAuthUser(c, profile.Email, firstName, lastName, "google")
}
