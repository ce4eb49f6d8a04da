package checkout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWizardStartsAtStepOne(t *testing.T) {
	w := NewWizard(nil)

	assert.Equal(t, 1, w.CurrentStep)
	assert.NotEmpty(t, w.SessionID)
	assert.NotEmpty(t, w.IdempotencyKey)
	assert.False(t, w.IsSubmitting)
}

func TestIdempotencyKeyStableAcrossSession(t *testing.T) {
	w := NewWizard(nil)
	key := w.IdempotencyKey

	w.Apply(SetShippingMethod{Method: ShippingExpress})
	require.NoError(t, w.Next())

	assert.Equal(t, key, w.IdempotencyKey, "la clé est générée une seule fois par session")
}

func TestNextBlockedByInvalidStep(t *testing.T) {
	w := NewWizard(nil)

	err := w.Next()
	require.Error(t, err, "étape 1 vide, on n'avance pas")
	assert.Equal(t, 1, w.CurrentStep)
}

func TestNextClampsAtLastStep(t *testing.T) {
	w := NewWizard(nil)
	w.Draft = completeDraft()

	for i := 0; i < 10; i++ {
		require.NoError(t, w.Next())
	}
	assert.Equal(t, StepCount, w.CurrentStep)
}

func TestPrevClampsAtFirstStep(t *testing.T) {
	w := NewWizard(nil)
	w.Draft = completeDraft()

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	assert.Equal(t, 3, w.CurrentStep)

	w.Prev()
	w.Prev()
	w.Prev()
	w.Prev()
	assert.Equal(t, 1, w.CurrentStep)
}

func TestPrevNeverValidates(t *testing.T) {
	w := NewWizard(nil)
	w.Draft = completeDraft()
	require.NoError(t, w.Next())

	// On casse le brouillon : reculer doit quand même marcher
	w.Apply(SetCustomerInfo{})
	w.Prev()
	assert.Equal(t, 1, w.CurrentStep)
}

func TestWizardSurvivesJSONRoundTrip(t *testing.T) {
	w := NewWizard(nil)
	w.Draft = completeDraft()
	require.NoError(t, w.Next())

	data, err := json.Marshal(w)
	require.NoError(t, err)

	var restored Wizard
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, w.SessionID, restored.SessionID)
	assert.Equal(t, w.CurrentStep, restored.CurrentStep)
	assert.Equal(t, w.IdempotencyKey, restored.IdempotencyKey)
	assert.Equal(t, w.Draft, restored.Draft)
}
