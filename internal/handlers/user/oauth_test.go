package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullName(t *testing.T) {
	first, last := splitFullName("Awa Diop")
	assert.Equal(t, "Awa", first)
	assert.Equal(t, "Diop", last)

	first, last = splitFullName("Madiba")
	assert.Equal(t, "Madiba", first)
	assert.Empty(t, last)

	first, last = splitFullName("Jean Pierre Sagna")
	assert.Equal(t, "Jean", first)
	assert.Equal(t, "Pierre Sagna", last)
}
