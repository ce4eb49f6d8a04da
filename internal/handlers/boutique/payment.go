package boutique

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"academie_back_end/internal/checkout"
	"academie_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"github.com/stripe/stripe-go/v83/webhook"
)

// ✅ Crée un PaymentIntent Stripe pour une commande payée par carte.
// Les autres méthodes (wave, orange_money, cash_on_delivery) sont réglées
// hors ligne et ne passent pas par ici.
func CreatePaymentIntent(c *gin.Context) {
	var req struct {
		OrderNumber string `json:"order_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	order, err := checkout.GetOrderByNumber(c.Request.Context(), req.OrderNumber)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if order.PaymentMethod != checkout.PaymentCard {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cette commande n'est pas payée par carte"})
		return
	}
	if order.Status != models.OrderStatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Commande déjà réglée"})
		return
	}

	// XOF est une devise sans décimales : le montant part tel quel
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(order.Total),
		Currency: stripe.String("xof"),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"order_number": order.OrderNumber,
			"order_id":     order.ID.String(),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création paiement", "details": err.Error()})
		return
	}

	log.Printf("💳 PaymentIntent créé: %s (%d FCFA) pour commande %s", intent.ID, order.Total, order.OrderNumber)

	c.JSON(http.StatusOK, gin.H{
		"client_secret": intent.ClientSecret,
		"payment_id":    intent.ID,
		"amount":        order.Total,
		"currency":      "xof",
	})
}

// ✅ Webhook Stripe : marque la commande payée quand le paiement aboutit
func StripeWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := c.GetRawData()
	if err != nil {
		log.Println("❌ Lecture payload échouée:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Échec lecture body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	var event stripe.Event

	if secret == "" {
		log.Println("⚠️ Pas de STRIPE_WEBHOOK_SECRET — mode test")
		if err := json.Unmarshal(payload, &event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON invalide"})
			return
		}
	} else {
		event, err = webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), secret)
		if err != nil {
			log.Println("❌ Signature webhook invalide:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Signature invalide"})
			return
		}
	}

	if event.Type != "payment_intent.succeeded" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Événement invalide"})
		return
	}

	orderNumber := intent.Metadata["order_number"]
	if orderNumber == "" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	order, err := checkout.GetOrderByNumber(c.Request.Context(), orderNumber)
	if err != nil {
		log.Printf("❌ Webhook: commande %s introuvable", orderNumber)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := checkout.UpdateOrderStatus(c.Request.Context(), order.ID, models.OrderStatusPaid); err != nil {
		log.Printf("❌ Webhook: statut non mis à jour pour %s: %v", orderNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour"})
		return
	}

	log.Printf("💳 Commande %s payée (PaymentIntent %s)", orderNumber, intent.ID)
	c.JSON(http.StatusOK, gin.H{"received": true})
}
