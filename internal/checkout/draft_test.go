package checkout

import (
	"testing"

	"academie_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftPrefillsFromAccount(t *testing.T) {
	user := &models.User{
		ID:        "u-1",
		Email:     "amadou@example.com",
		Phone:     "+221771234567",
		FirstName: "Amadou",
		LastName:  "Diallo",
	}

	d := NewDraft(user)

	assert.Equal(t, "amadou@example.com", d.Email)
	assert.Equal(t, "+221771234567", d.Phone)
	assert.Equal(t, "Amadou", d.FirstName)
	assert.Equal(t, "Diallo", d.LastName)
	assert.True(t, d.UseSameForBilling)
}

func TestNewDraftGuestIsBlank(t *testing.T) {
	d := NewDraft(nil)

	assert.Empty(t, d.Email)
	assert.Empty(t, d.FirstName)
	assert.True(t, d.UseSameForBilling)
}

func TestApplyReturnsCopy(t *testing.T) {
	before := NewDraft(nil)

	after := before.Apply(SetCustomerInfo{Email: "client@example.com"})

	assert.Empty(t, before.Email, "le brouillon d'origine ne doit pas bouger")
	assert.Equal(t, "client@example.com", after.Email)
}

func TestSetShippingMethodDerivesCost(t *testing.T) {
	d := NewDraft(nil)

	d = d.Apply(SetShippingMethod{Method: ShippingStandard})
	assert.Equal(t, int64(0), d.ShippingCost)

	d = d.Apply(SetShippingMethod{Method: ShippingExpress})
	assert.Equal(t, int64(5000), d.ShippingCost)

	d = d.Apply(SetShippingMethod{Method: ShippingStandard})
	assert.Equal(t, int64(0), d.ShippingCost, "revenir au standard remet le coût à zéro")
}

func TestSetAddressSameForBillingClearsBilling(t *testing.T) {
	billing := models.Address{AddressLine1: "Rue 10", City: "Thiès", PostalCode: "21000", Country: "SN"}
	d := NewDraft(nil)

	d = d.Apply(SetAddress{
		ShippingAddress:   models.Address{AddressLine1: "Avenue Bourguiba", City: "Dakar", PostalCode: "12500", Country: "SN"},
		UseSameForBilling: false,
		BillingAddress:    &billing,
	})
	require.NotNil(t, d.BillingAddress)
	assert.Equal(t, "Thiès", d.BillingAddress.City)

	d = d.Apply(SetAddress{
		ShippingAddress:   d.ShippingAddress,
		UseSameForBilling: true,
	})
	assert.Nil(t, d.BillingAddress)
}

func TestShippingCostFor(t *testing.T) {
	assert.Equal(t, int64(0), ShippingCostFor(ShippingStandard))
	assert.Equal(t, int64(5000), ShippingCostFor(ShippingExpress))
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{PaymentCard, PaymentPaypal, PaymentWave, PaymentOrangeMoney, PaymentCashOnDelivery} {
		assert.True(t, ValidPaymentMethod(m), m)
	}
	assert.False(t, ValidPaymentMethod("cheque"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestValidShippingMethod(t *testing.T) {
	assert.True(t, ValidShippingMethod(ShippingStandard))
	assert.True(t, ValidShippingMethod(ShippingExpress))
	assert.False(t, ValidShippingMethod("drone"))
}
