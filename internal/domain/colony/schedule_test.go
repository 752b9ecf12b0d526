package colony_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/planetarysim/colonysim/internal/domain/colony"
)

func TestSchedule_InactiveFactoryWithEnoughInputsRunsImmediately(t *testing.T) {
	// Arrange
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newAlloyFactory(1)
	f.Contents[2400] = 10
	f.Contents[2401] = 10

	// Act
	s := colony.Schedule(f, now)

	// Assert
	assert.Equal(t, now.Add(time.Second), s)
}

func TestSchedule_MidCycleFactoryScheduledAtCycleEnd(t *testing.T) {
	// Arrange
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newAlloyFactory(1)
	f.IsActive = true
	start := now
	f.Factory.LastCycleStartTime = &start

	// Act
	s := colony.Schedule(f, now)

	// Assert: schematic cycle time is 1800s.
	assert.Equal(t, now.Add(1800*time.Second), s)
}

func TestSchedule_NeverBeforeNowPlusOneSecond(t *testing.T) {
	// Arrange
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newAlloyFactory(1)
	f.IsActive = true
	past := now.Add(-time.Hour)
	f.Factory.LastCycleStartTime = &past

	// Act
	s := colony.Schedule(f, now)

	// Assert: the computed next-run-time is in the past, so schedule
	// floors it at now+1s.
	assert.Equal(t, now.Add(time.Second), s)
}
