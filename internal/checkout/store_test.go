package checkout

import (
	"strings"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistingOrderIDFromRefusedCAS(t *testing.T) {
	// Un CAS refusé renvoie toutes les colonnes de la ligne existante :
	// on doit lire order_id, pas la première colonne venue
	want, err := gocql.RandomUUID()
	require.NoError(t, err)

	prev := map[string]interface{}{
		"idempotency_key": "4f2c6f3a-9b7e-4d1c-8a5e-000000000000",
		"order_id":        want,
	}

	got, ok := existingOrderID(prev)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestExistingOrderIDMissingColumn(t *testing.T) {
	_, ok := existingOrderID(map[string]interface{}{})
	assert.False(t, ok)

	_, ok = existingOrderID(map[string]interface{}{"order_id": "pas-un-uuid"})
	assert.False(t, ok)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	n := generateOrderNumber()

	parts := strings.Split(n, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "ACA", parts[0])
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 6)
	assert.Equal(t, strings.ToUpper(n), n)
}
