package user

import (
	"academie_back_end/internal/cache"
	"academie_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser charge le profil de l'utilisateur connecté (nil si invité)
func currentUser(c *gin.Context) (*models.User, error) {
	userID := c.GetString("user_id")
	if userID == "" {
		return nil, nil
	}
	return cache.GetUserFromCache(c.Request.Context(), userID)
}

// CurrentUser est la version exportée pour les autres packages de handlers
func CurrentUser(c *gin.Context) (*models.User, error) {
	return currentUser(c)
}

// CartOwner identifie le propriétaire du panier : user_id si connecté,
// sinon l'identifiant de session invité fourni par le front
func CartOwner(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	if sid := c.GetHeader("X-Guest-Session"); sid != "" {
		return "guest:" + sid
	}
	return ""
}
