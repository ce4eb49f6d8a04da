package boutique

import (
	"errors"
	"log"
	"net/http"

	"academie_back_end/internal/checkout"
	"academie_back_end/internal/handlers/user"
	"academie_back_end/internal/models"
	"academie_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// StartCheckout ouvre une session de commande à l'étape 1, pré-remplie
// depuis le compte si l'utilisateur est connecté
func StartCheckout(c *gin.Context) {
	owner := user.CartOwner(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identité ou session invité requise"})
		return
	}

	// Panier vide : rien à commander
	items, err := checkout.RedisCart{}.Items(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Panier vide",
			"redirect": "/boutique/panier",
		})
		return
	}

	u, _ := user.CurrentUser(c)
	w := checkout.NewWizard(u)

	if err := checkout.SaveSession(c.Request.Context(), w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session"})
		return
	}

	log.Printf("🛒 Session de commande ouverte: %s", w.SessionID)
	c.JSON(http.StatusCreated, wizardState(w))
}

// GetCheckoutState retourne l'état courant d'une session de commande
func GetCheckoutState(c *gin.Context) {
	w, ok := loadWizard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, wizardState(w))
}

// ApplyCheckoutAction applique une action de brouillon (une par étape).
// Le brouillon est muté uniquement par ce réducteur, jamais directement.
func ApplyCheckoutAction(c *gin.Context) {
	w, ok := loadWizard(c)
	if !ok {
		return
	}

	var input struct {
		CustomerInfo   *checkout.SetCustomerInfo   `json:"customer_info"`
		Address        *checkout.SetAddress        `json:"address"`
		ShippingMethod *checkout.SetShippingMethod `json:"shipping_method"`
		PaymentMethod  *checkout.SetPaymentMethod  `json:"payment_method"`
		Terms          *checkout.AcceptTerms       `json:"terms"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	switch {
	case input.CustomerInfo != nil:
		w.Apply(*input.CustomerInfo)
	case input.Address != nil:
		w.Apply(*input.Address)
	case input.ShippingMethod != nil:
		if !checkout.ValidShippingMethod(input.ShippingMethod.Method) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Méthode de livraison inconnue"})
			return
		}
		w.Apply(*input.ShippingMethod)
	case input.PaymentMethod != nil:
		if !checkout.ValidPaymentMethod(input.PaymentMethod.Method) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Méthode de paiement inconnue"})
			return
		}
		w.Apply(*input.PaymentMethod)
	case input.Terms != nil:
		w.Apply(*input.Terms)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucune action fournie"})
		return
	}

	if err := checkout.SaveSession(c.Request.Context(), w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	c.JSON(http.StatusOK, wizardState(w))
}

// NextCheckoutStep avance d'une étape si les champs requis sont remplis
func NextCheckoutStep(c *gin.Context) {
	w, ok := loadWizard(c)
	if !ok {
		return
	}

	if err := w.Next(); err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": verr.Message,
				"field": verr.Field,
				"step":  verr.Step,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := checkout.SaveSession(c.Request.Context(), w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	c.JSON(http.StatusOK, wizardState(w))
}

// PrevCheckoutStep recule d'une étape, sans validation
func PrevCheckoutStep(c *gin.Context) {
	w, ok := loadWizard(c)
	if !ok {
		return
	}

	w.Prev()

	if err := checkout.SaveSession(c.Request.Context(), w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	c.JSON(http.StatusOK, wizardState(w))
}

// SubmitCheckout transforme le brouillon en commande. Un seul appel de
// création par soumission ; en cas d'échec le panier reste intact.
func SubmitCheckout(c *gin.Context) {
	w, ok := loadWizard(c)
	if !ok {
		return
	}

	owner := user.CartOwner(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identité ou session invité requise"})
		return
	}

	u, _ := user.CurrentUser(c)
	ctx := c.Request.Context()

	order, err := w.Submit(ctx, checkout.RedisCart{}, checkout.ScyllaOrderStore{}, owner, u)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":    "Panier vide",
				"redirect": "/boutique/panier",
			})
		case errors.Is(err, checkout.ErrNotAtFinalStep):
			c.JSON(http.StatusConflict, gin.H{"error": "Parcours de commande incomplet", "step": w.CurrentStep})
		case errors.Is(err, checkout.ErrTermsNotAccepted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez accepter les conditions générales"})
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": verr.Message,
				"field": verr.Field,
				"step":  verr.Step,
			})
		default:
			log.Printf("❌ Échec création commande (session %s): %v", w.SessionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande", "details": err.Error()})
		}
		return
	}

	// Session consommée : une nouvelle commande repart d'une nouvelle session
	if err := checkout.DeleteSession(ctx, w.SessionID); err != nil {
		log.Printf("⚠️ Session %s non supprimée: %v", w.SessionID, err)
	}

	log.Printf("✅ Commande créée: %s (%d FCFA, paiement %s)", order.OrderNumber, order.Total, order.PaymentMethod)

	// Email de confirmation en arrière-plan, la réponse n'attend pas
	recipient := order.GuestEmail
	if u != nil {
		recipient = u.Email
	}
	go sendOrderConfirmation(*order, recipient)

	c.JSON(http.StatusCreated, gin.H{
		"order_number": order.OrderNumber,
		"total":        order.Total,
		"redirect":     "/boutique/confirmation?order=" + order.OrderNumber,
	})
}

// wizardState est la vue JSON de la session renvoyée après chaque opération
func wizardState(w *checkout.Wizard) gin.H {
	return gin.H{
		"session_id":    w.SessionID,
		"current_step":  w.CurrentStep,
		"draft":         w.Draft,
		"is_submitting": w.IsSubmitting,
	}
}

// loadWizard charge la session de commande désignée par :sessionId
func loadWizard(c *gin.Context) (*checkout.Wizard, bool) {
	w, err := checkout.LoadSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session de commande introuvable ou expirée"})
		return nil, false
	}
	return w, true
}

// sendOrderConfirmation envoie l'email de confirmation avec QR de retrait
// et reçu PDF. Les échecs sont loggés, jamais bloquants pour la commande.
func sendOrderConfirmation(order models.Order, email string) {
	if email == "" {
		return
	}

	qrBase64, err := utils.GeneratePickupQR(order.OrderNumber)
	if err != nil {
		log.Printf("⚠️ QR non généré pour %s: %v", order.OrderNumber, err)
	}

	var pdf []byte
	if pdfData, err := utils.RenderReceiptPDF(utils.GetFrontendReceiptBaseURL(), order.OrderNumber); err == nil {
		pdf = pdfData
	} else {
		log.Printf("⚠️ Reçu PDF non généré pour %s: %v", order.OrderNumber, err)
	}

	html := utils.GenerateOrderConfirmationHTML(order, qrBase64)
	subject := "✅ Commande " + order.OrderNumber + " confirmée — Académie Étoile"

	if err := utils.SendEmail(email, subject, html, pdf); err != nil {
		log.Printf("❌ Email de confirmation non envoyé pour %s: %v", order.OrderNumber, err)
	}
}
