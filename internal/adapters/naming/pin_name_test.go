package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planetarysim/colonysim/internal/adapters/naming"
)

func TestCache_NameIsDeterministicAndCached(t *testing.T) {
	c := naming.NewCache()

	first := c.Name(1000000000001)
	second := c.Name(1000000000001)
	assert.Equal(t, first, second)
	assert.Len(t, first, 6) // "XX-XXX"
	assert.Equal(t, byte('-'), first[2])
}

func TestCache_DifferentIdsDifferentNames(t *testing.T) {
	c := naming.NewCache()

	a := c.Name(1)
	b := c.Name(2)
	assert.NotEqual(t, a, b)
}
