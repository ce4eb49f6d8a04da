package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"academie_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3
	FormMaxSubmissions  = 5 // candidatures / demandes de visite par IP

	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
	FormCooldown     = 1 * time.Hour
)

// LoginRateLimit limite les tentatives de connexion par email
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := context.Background()
		cooldownKey := "login_cooldown:" + input.Email

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RecordFailedLogin incrémente le compteur d'échecs et pose le cooldown si besoin
func RecordFailedLogin(email string) {
	ctx := context.Background()
	key := "login_attempts:" + email

	attempts := database.Redis.Incr(ctx, key).Val()
	database.Redis.Expire(ctx, key, LoginCooldown)

	if attempts >= LoginMaxAttempts {
		database.Redis.Set(ctx, "login_cooldown:"+email, "1", LoginCooldown)
		database.Redis.Del(ctx, key)
	}
}

// ResetLoginAttempts efface le compteur après une connexion réussie
func ResetLoginAttempts(email string) {
	database.Redis.Del(context.Background(), "login_attempts:"+email)
}

// FormRateLimit limite les soumissions de formulaires publics par IP
// (candidatures, demandes de visite)
func FormRateLimit(form string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		key := fmt.Sprintf("form_limit:%s:%s", form, c.ClientIP())

		count := database.Redis.Incr(ctx, key).Val()
		if count == 1 {
			database.Redis.Expire(ctx, key, FormCooldown)
		}

		if count > FormMaxSubmissions {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de soumissions. Réessayez plus tard",
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
