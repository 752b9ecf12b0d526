package colony_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/domain/colony"
)

func TestEventQueue_PopsInTimeThenIDOrder(t *testing.T) {
	// Arrange
	q := colony.NewEventQueue()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	q.Upsert(base.Add(time.Minute), 2)
	q.Upsert(base, 5)
	q.Upsert(base, 1)

	// Act & Assert
	e1, ok := q.PopNext()
	require.True(t, ok)
	assert.Equal(t, int64(1), e1.FacilityID)

	e2, ok := q.PopNext()
	require.True(t, ok)
	assert.Equal(t, int64(5), e2.FacilityID)

	e3, ok := q.PopNext()
	require.True(t, ok)
	assert.Equal(t, int64(2), e3.FacilityID)
}

func TestEventQueue_UpsertReplacesExistingEventForFacility(t *testing.T) {
	// Arrange
	q := colony.NewEventQueue()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	q.Upsert(base.Add(time.Hour), 1)

	// Act
	q.Upsert(base, 1)

	// Assert
	assert.Equal(t, 1, q.Len())
	e, ok := q.PopNext()
	require.True(t, ok)
	assert.True(t, e.ScheduledTime.Equal(base))
}

func TestEventQueue_EmptyPop(t *testing.T) {
	// Arrange
	q := colony.NewEventQueue()

	// Act
	_, ok := q.PopNext()

	// Assert
	assert.False(t, ok)
}
