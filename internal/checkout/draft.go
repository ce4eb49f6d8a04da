package checkout

import "academie_back_end/internal/models"

// Méthodes de livraison
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// Coûts de livraison en FCFA (politique boutique, pas configurable au runtime)
const (
	ShippingCostStandard int64 = 0
	ShippingCostExpress  int64 = 5000
)

// Méthodes de paiement acceptées
const (
	PaymentCard           = "card"
	PaymentPaypal         = "paypal"
	PaymentWave           = "wave"
	PaymentOrangeMoney    = "orange_money"
	PaymentCashOnDelivery = "cash_on_delivery"
)

// Draft est le brouillon de commande accumulé au fil des 5 étapes.
// Il ne vit qu'en mémoire de session jusqu'à la soumission finale :
// aucune commande partielle n'est jamais persistée.
type Draft struct {
	// Étape 1 — identité
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	CreateAccount bool   `json:"create_account"`

	// Étape 2 — adresse
	ShippingAddress   models.Address  `json:"shipping_address"`
	UseSameForBilling bool            `json:"use_same_for_billing"`
	BillingAddress    *models.Address `json:"billing_address,omitempty"`

	// Étape 3 — livraison
	ShippingMethod string `json:"shipping_method,omitempty"`
	ShippingCost   int64  `json:"shipping_cost"`

	// Étape 4 — paiement
	PaymentMethod string `json:"payment_method,omitempty"`

	// Étape 5 — confirmation
	AcceptTerms bool `json:"accept_terms"`
}

// NewDraft retourne un brouillon vierge, pré-rempli depuis le compte si connecté
func NewDraft(user *models.User) Draft {
	d := Draft{UseSameForBilling: true}
	if user != nil {
		d.Email = user.Email
		d.Phone = user.Phone
		d.FirstName = user.FirstName
		d.LastName = user.LastName
	}
	return d
}

// Action est l'union étiquetée des mutations possibles du brouillon.
// Le brouillon reste immuable entre deux actions : Apply retourne une copie.
type Action interface {
	apply(Draft) Draft
}

type SetCustomerInfo struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	CreateAccount bool   `json:"create_account"`
}

type SetAddress struct {
	ShippingAddress   models.Address  `json:"shipping_address"`
	UseSameForBilling bool            `json:"use_same_for_billing"`
	BillingAddress    *models.Address `json:"billing_address,omitempty"`
}

type SetShippingMethod struct {
	Method string `json:"method"`
}

type SetPaymentMethod struct {
	Method string `json:"method"`
}

type AcceptTerms struct {
	Accepted bool `json:"accepted"`
}

func (a SetCustomerInfo) apply(d Draft) Draft {
	d.Email = a.Email
	d.Phone = a.Phone
	d.FirstName = a.FirstName
	d.LastName = a.LastName
	d.CreateAccount = a.CreateAccount
	return d
}

func (a SetAddress) apply(d Draft) Draft {
	d.ShippingAddress = a.ShippingAddress
	d.UseSameForBilling = a.UseSameForBilling
	if a.UseSameForBilling {
		d.BillingAddress = nil
	} else if a.BillingAddress != nil {
		addr := *a.BillingAddress
		d.BillingAddress = &addr
	}
	return d
}

// Choisir une méthode fixe aussi le coût de livraison (valeur dérivée)
func (a SetShippingMethod) apply(d Draft) Draft {
	d.ShippingMethod = a.Method
	d.ShippingCost = ShippingCostFor(a.Method)
	return d
}

func (a SetPaymentMethod) apply(d Draft) Draft {
	d.PaymentMethod = a.Method
	return d
}

func (a AcceptTerms) apply(d Draft) Draft {
	d.AcceptTerms = a.Accepted
	return d
}

// Apply applique une action et retourne le nouveau brouillon
func (d Draft) Apply(a Action) Draft {
	return a.apply(d)
}

// ShippingCostFor retourne le coût FCFA d'une méthode de livraison
func ShippingCostFor(method string) int64 {
	if method == ShippingExpress {
		return ShippingCostExpress
	}
	return ShippingCostStandard
}

// ValidShippingMethod vérifie qu'une méthode de livraison est connue
func ValidShippingMethod(method string) bool {
	return method == ShippingStandard || method == ShippingExpress
}

// ValidPaymentMethod vérifie qu'une méthode de paiement est connue
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCard, PaymentPaypal, PaymentWave, PaymentOrangeMoney, PaymentCashOnDelivery:
		return true
	}
	return false
}
