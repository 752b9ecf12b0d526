package commodity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/domain/commodity"
)

func TestNew_RejectsNegativeVolume(t *testing.T) {
	// Arrange & Act
	_, err := commodity.New(2400, -1, "Water")

	// Assert
	require.Error(t, err)
}

func TestNew_Accessors(t *testing.T) {
	// Arrange & Act
	c, err := commodity.New(2400, 0.38, "Water")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2400, c.TypeID())
	assert.Equal(t, 0.38, c.Volume())
	assert.Equal(t, "Water", c.Name())
}

func TestEquals_ByTypeIDOnly(t *testing.T) {
	// Arrange
	a := commodity.MustNew(2400, 0.38, "Water")
	b := commodity.MustNew(2400, 99, "Water (renamed)")
	c := commodity.MustNew(2401, 0.38, "Water")

	// Act & Assert
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
