package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket pousse l'état du panier à chaque modification
// (un autre onglet, l'ajout depuis la fiche produit, le vidage après commande)
func CartWebSocket(c *gin.Context) {
	owner := CartOwner(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identité ou session invité requise"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	// S'abonner au canal Redis du panier
	pubsub := database.Redis.Subscribe(ctx, "cart:"+owner)
	defer pubsub.Close()

	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}

			items, err := cart.Items(ctx, owner)
			if err != nil {
				continue
			}

			if err := conn.WriteJSON(map[string]interface{}{
				"type":         "cart_updated",
				"items":        items,
				"total_amount": models.CartTotal(items),
				"count":        len(items),
			}); err != nil {
				// Client parti, on arrête la boucle
				return
			}

		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active et détecter un client parti
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
