package colony_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/planetarysim/colonysim/internal/domain/colony"
)

func TestCanActivate_InactiveFactoryWithEnoughInputsReturnsFalse(t *testing.T) {
	// Arrange: Open Question 1 (§9) — this must stay false; "run now" is
	// signalled through NextRunTime instead.
	f := newAlloyFactory(1)
	f.Contents[2400] = 10
	f.Contents[2401] = 10

	// Act & Assert
	assert.False(t, colony.CanActivate(f))
	assert.True(t, colony.CanRun(f))
}

func TestCanActivate_ActiveExtractorWithProduct(t *testing.T) {
	// Arrange
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newExtractor(1, 4000, now, time.Hour, now.Add(30*24*time.Hour))

	// Act & Assert
	assert.True(t, colony.CanActivate(f))
	assert.True(t, colony.IsActive(f))
}

func TestIsStorage(t *testing.T) {
	// Arrange
	storage := newStorage(1)
	factory := newAlloyFactory(2)

	// Act & Assert
	assert.True(t, colony.IsStorage(storage))
	assert.False(t, colony.IsStorage(factory))
	assert.False(t, colony.CanRun(storage))
}

func TestIsConsumer_OnlyFactories(t *testing.T) {
	// Arrange
	factory := newAlloyFactory(1)
	extractor := newExtractor(2, 1000, time.Now(), time.Hour, time.Now().Add(time.Hour))

	// Act & Assert
	assert.True(t, colony.IsConsumer(factory))
	assert.False(t, colony.IsConsumer(extractor))
}
