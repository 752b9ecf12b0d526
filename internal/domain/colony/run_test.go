package colony_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/domain/colony"
)

func TestRunExtractor_HarvestsAndClearsContents(t *testing.T) {
	// Arrange
	install := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newExtractor(1, 4000, install, time.Hour, install.Add(30*24*time.Hour))

	// Act
	harvested := colony.RunExtractor(f, install.Add(time.Hour))

	// Assert: output is set aside for routing, not left sitting in
	// contents.
	require.NotEmpty(t, harvested)
	assert.Equal(t, int64(0), f.Contents[2400])
	assert.Equal(t, 0.0, f.CapacityUsed)
	assert.NotNil(t, f.LastRunTime)
}

func TestRunExtractor_DeactivatesOnExpiry(t *testing.T) {
	// Arrange
	install := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := install.Add(time.Hour)
	f := newExtractor(1, 4000, install, time.Hour, expiry)

	// Act
	colony.RunExtractor(f, expiry)

	// Assert
	assert.False(t, f.IsActive)
}

func TestColonyRunFactory_StartsCycleWhenInputsSufficient(t *testing.T) {
	// Arrange
	k := colony.NewColony(1, time.Now())
	f := newAlloyFactory(1)
	f.Contents[2400] = 10
	f.Contents[2401] = 10
	k.Pins[f.ID] = f

	// Act
	result, harvested := k.RunFactory(f, time.Now(), nil)

	// Assert
	assert.Equal(t, colony.StartedCycle, result)
	assert.Empty(t, harvested)
	assert.True(t, f.IsActive)
	assert.NotNil(t, f.Factory.LastCycleStartTime)
	assert.Equal(t, int64(0), f.Contents[2400])
}

func TestColonyRunFactory_CompletesCycleAfterDuration(t *testing.T) {
	// Arrange
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	k := colony.NewColony(1, start)
	f := newAlloyFactory(1)
	f.Contents[2400] = 10
	f.Contents[2401] = 10
	k.Pins[f.ID] = f
	k.RunFactory(f, start, nil)

	// Act
	result, harvested := k.RunFactory(f, start.Add(30*time.Minute), nil)

	// Assert: schematic cycle time is 1800s (30m), so it should complete.
	assert.Equal(t, colony.CompletedCycle, result)
	require.NotEmpty(t, harvested)
	assert.Equal(t, int64(5), harvested[2500])
	assert.False(t, f.IsActive)
}

func TestColonyRunFactory_NotProducedWhenInputsMissing(t *testing.T) {
	// Arrange
	k := colony.NewColony(1, time.Now())
	f := newAlloyFactory(1)
	k.Pins[f.ID] = f

	// Act
	result, harvested := k.RunFactory(f, time.Now(), nil)

	// Assert
	assert.Equal(t, colony.NotProduced, result)
	assert.Empty(t, harvested)
	assert.False(t, f.IsActive)
}
