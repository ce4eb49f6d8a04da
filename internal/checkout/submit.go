package checkout

import (
	"context"
	"errors"
	"fmt"

	"academie_back_end/internal/models"
)

var (
	// ErrTermsNotAccepted — soumission tentée sans accepter les conditions
	ErrTermsNotAccepted = errors.New("conditions générales non acceptées")
	// ErrEmptyCart — le panier est vide, le client doit être renvoyé vers /boutique/panier
	ErrEmptyCart = errors.New("panier vide")
	// ErrNotAtFinalStep — la soumission n'est atteignable qu'à l'étape de confirmation
	ErrNotAtFinalStep = errors.New("soumission avant l'étape de confirmation")
)

// CartStore est le contrat minimal attendu du panier
type CartStore interface {
	Items(ctx context.Context, owner string) ([]models.CartItem, error)
	TotalAmount(ctx context.Context, owner string) (int64, error)
	Clear(ctx context.Context, owner string) error
}

// OrderCreator crée la commande côté persistance. L'implémentation doit
// rejeter une IdempotencyKey déjà vue.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*models.Order, error)
}

// OrderRequest est la requête de création de commande dérivée du brouillon
// et du panier au moment de la soumission. Construite une seule fois,
// jamais stockée telle quelle.
type OrderRequest struct {
	IdempotencyKey string             `json:"idempotency_key"`
	UserID         string             `json:"user_id,omitempty"`
	GuestEmail     string             `json:"guest_email,omitempty"`
	GuestPhone     string             `json:"guest_phone,omitempty"`
	GuestFirstName string             `json:"guest_first_name,omitempty"`
	GuestLastName  string             `json:"guest_last_name,omitempty"`
	Subtotal       int64              `json:"subtotal"`
	ShippingCost   int64              `json:"shipping_cost"`
	Total          int64              `json:"total"`
	ShippingMethod string             `json:"shipping_method"`
	PaymentMethod  string             `json:"payment_method"`
	ShippingAddr   models.Address     `json:"shipping_address"`
	BillingAddr    models.Address     `json:"billing_address"`
	Items          []models.OrderItem `json:"items"`
}

// BuildOrderRequest assemble la requête de commande depuis le brouillon et
// les lignes du panier. user est nil pour une commande invité.
func (w *Wizard) BuildOrderRequest(items []models.CartItem, subtotal int64, user *models.User) OrderRequest {
	d := w.Draft

	req := OrderRequest{
		IdempotencyKey: w.IdempotencyKey,
		Subtotal:       subtotal,
		ShippingCost:   d.ShippingCost,
		Total:          subtotal + d.ShippingCost,
		ShippingMethod: d.ShippingMethod,
		PaymentMethod:  d.PaymentMethod,
		ShippingAddr:   d.ShippingAddress,
	}

	// Facturation = livraison sauf adresse distincte explicite
	if d.UseSameForBilling || d.BillingAddress == nil {
		req.BillingAddr = d.ShippingAddress
	} else {
		req.BillingAddr = *d.BillingAddress
	}

	// Champs invité uniquement en l'absence d'identité authentifiée
	if user != nil {
		req.UserID = user.ID
	} else {
		req.GuestEmail = d.Email
		req.GuestPhone = d.Phone
		req.GuestFirstName = d.FirstName
		req.GuestLastName = d.LastName
	}

	req.Items = make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		req.Items = append(req.Items, models.OrderItem{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.Name,
			VariantName: item.VariantName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.UnitPrice * int64(item.Quantity),
		})
	}

	return req
}

// Submit est le seul point où le brouillon devient une vraie commande.
// Garde-fous : étape de confirmation atteinte, brouillon complet sur les
// 5 étapes, conditions acceptées et panier non vide, sinon aucun appel
// au collaborateur. Un seul appel de création par soumission ; en cas
// d'échec le panier et le brouillon restent intacts, pas de retry.
func (w *Wizard) Submit(ctx context.Context, cart CartStore, creator OrderCreator, owner string, user *models.User) (*models.Order, error) {
	if w.CurrentStep != StepCount {
		return nil, ErrNotAtFinalStep
	}
	if !w.Draft.AcceptTerms {
		return nil, ErrTermsNotAccepted
	}
	for step := 1; step < StepCount; step++ {
		if err := ValidateStep(step, w.Draft); err != nil {
			return nil, err
		}
	}

	items, err := cart.Items(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("lecture panier: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal, err := cart.TotalAmount(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("calcul sous-total: %w", err)
	}

	w.IsSubmitting = true
	defer func() { w.IsSubmitting = false }()

	req := w.BuildOrderRequest(items, subtotal, user)

	order, err := creator.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	// Succès : on vide le panier, la session sera supprimée par l'appelant
	if err := cart.Clear(ctx, owner); err != nil {
		// La commande existe déjà, on ne la remet pas en cause pour autant
		return order, nil
	}

	return order, nil
}
