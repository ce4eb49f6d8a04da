package checkout

import (
	"fmt"
	"regexp"
	"strings"
)

// StepCount — le parcours de commande compte 5 étapes
const StepCount = 5

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError signale un champ requis manquant ou invalide pour une étape
type ValidationError struct {
	Step    int    `json:"step"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("étape %d: %s — %s", e.Step, e.Field, e.Message)
}

// stepValidators — un validateur déclaratif par étape. C'est le contrôleur,
// pas chaque écran, qui décide si on peut avancer.
var stepValidators = map[int]func(Draft) *ValidationError{
	1: validateCustomerInfo,
	2: validateAddress,
	3: validateShippingMethod,
	4: validatePaymentMethod,
	5: validateTerms,
}

// ValidateStep vérifie les champs requis de l'étape donnée
func ValidateStep(step int, d Draft) error {
	validator, ok := stepValidators[step]
	if !ok {
		return &ValidationError{Step: step, Field: "step", Message: "étape inconnue"}
	}
	if err := validator(d); err != nil {
		return err
	}
	return nil
}

func validateCustomerInfo(d Draft) *ValidationError {
	if strings.TrimSpace(d.Email) == "" {
		return &ValidationError{Step: 1, Field: "email", Message: "email requis"}
	}
	if !emailPattern.MatchString(d.Email) {
		return &ValidationError{Step: 1, Field: "email", Message: "format email invalide"}
	}
	if strings.TrimSpace(d.FirstName) == "" {
		return &ValidationError{Step: 1, Field: "first_name", Message: "prénom requis"}
	}
	if strings.TrimSpace(d.LastName) == "" {
		return &ValidationError{Step: 1, Field: "last_name", Message: "nom requis"}
	}
	if strings.TrimSpace(d.Phone) == "" {
		return &ValidationError{Step: 1, Field: "phone", Message: "téléphone requis"}
	}
	return nil
}

func validateAddress(d Draft) *ValidationError {
	if strings.TrimSpace(d.ShippingAddress.AddressLine1) == "" {
		return &ValidationError{Step: 2, Field: "address_line1", Message: "adresse requise"}
	}
	if strings.TrimSpace(d.ShippingAddress.City) == "" {
		return &ValidationError{Step: 2, Field: "city", Message: "ville requise"}
	}
	if strings.TrimSpace(d.ShippingAddress.PostalCode) == "" {
		return &ValidationError{Step: 2, Field: "postal_code", Message: "code postal requis"}
	}
	return nil
}

func validateShippingMethod(d Draft) *ValidationError {
	if d.ShippingMethod == "" {
		return &ValidationError{Step: 3, Field: "shipping_method", Message: "méthode de livraison requise"}
	}
	if !ValidShippingMethod(d.ShippingMethod) {
		return &ValidationError{Step: 3, Field: "shipping_method", Message: "méthode de livraison inconnue"}
	}
	return nil
}

func validatePaymentMethod(d Draft) *ValidationError {
	if d.PaymentMethod == "" {
		return &ValidationError{Step: 4, Field: "payment_method", Message: "méthode de paiement requise"}
	}
	if !ValidPaymentMethod(d.PaymentMethod) {
		return &ValidationError{Step: 4, Field: "payment_method", Message: "méthode de paiement inconnue"}
	}
	return nil
}

func validateTerms(d Draft) *ValidationError {
	if !d.AcceptTerms {
		return &ValidationError{Step: 5, Field: "accept_terms", Message: "conditions générales non acceptées"}
	}
	return nil
}
