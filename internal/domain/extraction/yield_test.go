package extraction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/planetarysim/colonysim/internal/domain/extraction"
)

func TestCycleOutput_NonNegative(t *testing.T) {
	// Arrange
	cycleTime := 3600 * time.Second

	// Act & Assert: the model must never predict negative output for any
	// cycle in a reasonable extraction window.
	for n := 0; n < 200; n++ {
		output := extraction.CycleOutput(4000, cycleTime, n)
		assert.GreaterOrEqual(t, output, int64(0))
	}
}

func TestCycleOutput_Deterministic(t *testing.T) {
	// Arrange
	cycleTime := 1800 * time.Second

	// Act
	a := extraction.CycleOutput(5000, cycleTime, 10)
	b := extraction.CycleOutput(5000, cycleTime, 10)

	// Assert
	assert.Equal(t, a, b)
}

func TestGetProgramOutput_MatchesCycleZeroAtInstall(t *testing.T) {
	// Arrange
	install := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cycleTime := 3600 * time.Second

	// Act
	output := extraction.GetProgramOutput(4000, install, install, cycleTime)
	expected := extraction.CycleOutput(4000, cycleTime, 0)

	// Assert
	assert.Equal(t, expected, output)
}

func TestCurrentCycleIndex_ExpiredReturnsNegativeOne(t *testing.T) {
	// Arrange
	install := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := install.Add(24 * time.Hour)
	cycleTime := 3600 * time.Second

	// Act
	idx := extraction.CurrentCycleIndex(install, expiry, expiry.Add(time.Hour), cycleTime)

	// Assert
	assert.Equal(t, -1, idx)
}

func TestCurrentCycleIndex_WithinWindow(t *testing.T) {
	// Arrange
	install := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := install.Add(24 * time.Hour)
	cycleTime := 3600 * time.Second

	// Act
	idx := extraction.CurrentCycleIndex(install, expiry, install.Add(2*time.Hour), cycleTime)

	// Assert
	assert.Equal(t, 2, idx)
}
