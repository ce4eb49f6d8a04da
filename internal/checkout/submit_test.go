package checkout

import (
	"context"
	"errors"
	"testing"

	"academie_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCart struct {
	items      []models.CartItem
	itemsErr   error
	clearErr   error
	clearCalls int
}

func (f *fakeCart) Items(ctx context.Context, owner string) ([]models.CartItem, error) {
	return f.items, f.itemsErr
}

func (f *fakeCart) TotalAmount(ctx context.Context, owner string) (int64, error) {
	if f.itemsErr != nil {
		return 0, f.itemsErr
	}
	return models.CartTotal(f.items), nil
}

func (f *fakeCart) Clear(ctx context.Context, owner string) error {
	f.clearCalls++
	return f.clearErr
}

type fakeCreator struct {
	calls   int
	lastReq OrderRequest
	order   *models.Order
	err     error
}

func (f *fakeCreator) CreateOrder(ctx context.Context, req OrderRequest) (*models.Order, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	if f.order != nil {
		return f.order, nil
	}
	return &models.Order{OrderNumber: "ACA-20260829-ABCDEF", Total: req.Total}, nil
}

func twoLineCart() []models.CartItem {
	return []models.CartItem{
		{ProductID: "p1", Name: "Maillot domicile", Quantity: 2, UnitPrice: 1000},
		{ProductID: "p2", Name: "Écharpe", Quantity: 1, UnitPrice: 500},
	}
}

// readyWizard retourne un wizard à l'étape 5, brouillon complet, express
func readyWizard() *Wizard {
	w := NewWizard(nil)
	w.Draft = completeDraft()
	w.CurrentStep = StepCount
	return w
}

func TestSubmitOnlyReachableFromFinalStep(t *testing.T) {
	// Accepter les conditions dès l'étape 1 ne doit pas suffire à commander
	w := NewWizard(nil)
	w.Apply(AcceptTerms{Accepted: true})
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	order, err := w.Submit(context.Background(), cart, creator, "guest:abc", nil)

	assert.ErrorIs(t, err, ErrNotAtFinalStep)
	assert.Nil(t, order)
	assert.Zero(t, creator.calls, "aucune commande créée avant l'étape de confirmation")
	assert.Zero(t, cart.clearCalls)
}

func TestSubmitRevalidatesEarlierSteps(t *testing.T) {
	// Étape 5 atteinte mais brouillon incomplet : la soumission refuse
	w := readyWizard()
	w.Draft.PaymentMethod = ""
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	order, err := w.Submit(context.Background(), cart, creator, "guest:abc", nil)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.Zero(t, creator.calls)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 4, verr.Step)
	assert.Equal(t, "payment_method", verr.Field)
}

func TestSubmitRefusedWithoutTerms(t *testing.T) {
	w := readyWizard()
	w.Apply(AcceptTerms{Accepted: false})
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	order, err := w.Submit(context.Background(), cart, creator, "u-1", nil)

	assert.ErrorIs(t, err, ErrTermsNotAccepted)
	assert.Nil(t, order)
	assert.Zero(t, creator.calls, "aucun appel de création sans acceptation")
	assert.Zero(t, cart.clearCalls)
}

func TestSubmitRefusedOnEmptyCart(t *testing.T) {
	w := readyWizard()
	cart := &fakeCart{}
	creator := &fakeCreator{}

	order, err := w.Submit(context.Background(), cart, creator, "u-1", nil)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
	assert.Zero(t, creator.calls)
}

func TestSubmitTotals(t *testing.T) {
	w := readyWizard()
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	_, err := w.Submit(context.Background(), cart, creator, "guest:abc", nil)
	require.NoError(t, err)

	req := creator.lastReq
	assert.Equal(t, int64(2500), req.Subtotal)
	assert.Equal(t, int64(5000), req.ShippingCost)
	assert.Equal(t, int64(7500), req.Total)

	require.Len(t, req.Items, 2)
	assert.Equal(t, int64(2000), req.Items[0].TotalPrice)
	assert.Equal(t, int64(500), req.Items[1].TotalPrice)
}

func TestSubmitStandardShippingIsFree(t *testing.T) {
	w := readyWizard()
	w.Apply(SetShippingMethod{Method: ShippingStandard})
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	_, err := w.Submit(context.Background(), cart, creator, "guest:abc", nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), creator.lastReq.ShippingCost)
	assert.Equal(t, int64(2500), creator.lastReq.Total)
}

func TestSubmitBillingEqualsShippingWhenSame(t *testing.T) {
	w := readyWizard()
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	_, err := w.Submit(context.Background(), cart, creator, "guest:abc", nil)
	require.NoError(t, err)

	assert.Equal(t, creator.lastReq.ShippingAddr, creator.lastReq.BillingAddr)
}

func TestSubmitSeparateBillingAddress(t *testing.T) {
	w := readyWizard()
	billing := models.Address{AddressLine1: "BP 45", City: "Saint-Louis", PostalCode: "32000", Country: "SN"}
	w.Apply(SetAddress{
		ShippingAddress:   w.Draft.ShippingAddress,
		UseSameForBilling: false,
		BillingAddress:    &billing,
	})
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	_, err := w.Submit(context.Background(), cart, creator, "guest:abc", nil)
	require.NoError(t, err)

	assert.Equal(t, "Saint-Louis", creator.lastReq.BillingAddr.City)
	assert.NotEqual(t, creator.lastReq.ShippingAddr, creator.lastReq.BillingAddr)
}

func TestSubmitGuestFields(t *testing.T) {
	w := readyWizard()
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	_, err := w.Submit(context.Background(), cart, creator, "guest:abc", nil)
	require.NoError(t, err)

	req := creator.lastReq
	assert.Empty(t, req.UserID)
	assert.Equal(t, "fatou@example.com", req.GuestEmail)
	assert.Equal(t, "Fatou", req.GuestFirstName)
	assert.Equal(t, "Ndiaye", req.GuestLastName)
	assert.Equal(t, "+221770000000", req.GuestPhone)
}

func TestSubmitAuthenticatedFields(t *testing.T) {
	user := &models.User{ID: "u-42", Email: "fatou@example.com"}
	w := NewWizard(user)
	w.Draft = completeDraft()
	w.CurrentStep = StepCount
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	_, err := w.Submit(context.Background(), cart, creator, "u-42", user)
	require.NoError(t, err)

	req := creator.lastReq
	assert.Equal(t, "u-42", req.UserID)
	assert.Empty(t, req.GuestEmail, "pas de champs invité pour un compte")
	assert.Empty(t, req.GuestFirstName)
}

func TestSubmitCarriesIdempotencyKey(t *testing.T) {
	w := readyWizard()
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	_, err := w.Submit(context.Background(), cart, creator, "guest:abc", nil)
	require.NoError(t, err)

	assert.Equal(t, w.IdempotencyKey, creator.lastReq.IdempotencyKey)
}

func TestSubmitFailureLeavesCartIntact(t *testing.T) {
	w := readyWizard()
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{err: errors.New("scylla indisponible")}

	order, err := w.Submit(context.Background(), cart, creator, "u-1", nil)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, 1, creator.calls, "un seul essai, pas de retry")
	assert.Zero(t, cart.clearCalls, "le panier reste plein après un échec")
	assert.False(t, w.IsSubmitting)
}

func TestSubmitSuccessClearsCartOnce(t *testing.T) {
	w := readyWizard()
	cart := &fakeCart{items: twoLineCart()}
	creator := &fakeCreator{}

	order, err := w.Submit(context.Background(), cart, creator, "u-1", nil)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, 1, creator.calls)
	assert.Equal(t, 1, cart.clearCalls)
	assert.False(t, w.IsSubmitting)
}

func TestSubmitClearFailureStillReturnsOrder(t *testing.T) {
	w := readyWizard()
	cart := &fakeCart{items: twoLineCart(), clearErr: errors.New("redis indisponible")}
	creator := &fakeCreator{}

	order, err := w.Submit(context.Background(), cart, creator, "u-1", nil)

	assert.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "ACA-20260829-ABCDEF", order.OrderNumber)
}
