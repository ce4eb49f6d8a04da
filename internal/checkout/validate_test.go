package checkout

import (
	"testing"

	"academie_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeDraft retourne un brouillon qui passe les 5 étapes
func completeDraft() Draft {
	d := NewDraft(nil)
	d = d.Apply(SetCustomerInfo{
		Email:     "fatou@example.com",
		Phone:     "+221770000000",
		FirstName: "Fatou",
		LastName:  "Ndiaye",
	})
	d = d.Apply(SetAddress{
		ShippingAddress: models.Address{
			AddressLine1: "Cité Keur Gorgui, Villa 12",
			City:         "Dakar",
			PostalCode:   "12500",
			Country:      "SN",
		},
		UseSameForBilling: true,
	})
	d = d.Apply(SetShippingMethod{Method: ShippingExpress})
	d = d.Apply(SetPaymentMethod{Method: PaymentWave})
	d = d.Apply(AcceptTerms{Accepted: true})
	return d
}

func TestValidateStepCompleteDraftPassesAll(t *testing.T) {
	d := completeDraft()
	for step := 1; step <= StepCount; step++ {
		assert.NoError(t, ValidateStep(step, d), "étape %d", step)
	}
}

func TestValidateStepUnknownStep(t *testing.T) {
	err := ValidateStep(0, completeDraft())
	assert.Error(t, err)
	err = ValidateStep(6, completeDraft())
	assert.Error(t, err)
}

func TestValidateCustomerInfo(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{"email manquant", func(d *Draft) { d.Email = "" }, "email"},
		{"email invalide", func(d *Draft) { d.Email = "pas-un-email" }, "email"},
		{"email sans domaine", func(d *Draft) { d.Email = "a@b" }, "email"},
		{"prénom manquant", func(d *Draft) { d.FirstName = "  " }, "first_name"},
		{"nom manquant", func(d *Draft) { d.LastName = "" }, "last_name"},
		{"téléphone manquant", func(d *Draft) { d.Phone = "" }, "phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := completeDraft()
			tc.mutate(&d)

			err := ValidateStep(1, d)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, 1, verr.Step)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateAddress(t *testing.T) {
	d := completeDraft()
	d.ShippingAddress.City = ""

	err := ValidateStep(2, d)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "city", verr.Field)
}

func TestValidateShippingMethodRequired(t *testing.T) {
	d := completeDraft()
	d.ShippingMethod = ""
	assert.Error(t, ValidateStep(3, d))

	d.ShippingMethod = "pigeon"
	assert.Error(t, ValidateStep(3, d))
}

func TestValidatePaymentMethodRequired(t *testing.T) {
	d := completeDraft()
	d.PaymentMethod = ""
	assert.Error(t, ValidateStep(4, d))

	d.PaymentMethod = "troc"
	assert.Error(t, ValidateStep(4, d))
}

func TestValidateTerms(t *testing.T) {
	d := completeDraft()
	d.AcceptTerms = false

	err := ValidateStep(5, d)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "accept_terms", verr.Field)
}
