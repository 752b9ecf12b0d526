package colony_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/domain/colony"
	"github.com/planetarysim/colonysim/internal/domain/commodity"
)

func TestRouteOutput_FeedsEmptierFactoryFirst(t *testing.T) {
	// Arrange
	k := colony.NewColony(1, time.Now())
	src := newExtractor(1, 4000, time.Now(), time.Hour, time.Now().Add(time.Hour))
	full := newAlloyFactory(2)
	full.Contents[2400] = 9 // needs only 1 more of water
	empty := newAlloyFactory(3)

	k.Pins[src.ID] = src
	k.Pins[full.ID] = full
	k.Pins[empty.ID] = empty
	require.NoError(t, k.AddRoute(mustRoute(src.ID, full.ID, water, 10)))
	require.NoError(t, k.AddRoute(mustRoute(src.ID, empty.ID, water, 10)))

	// Act: only 10 units of water produced, not enough to top up both.
	k.RouteOutput(src, map[int]int64{2400: 10}, time.Now(), nil)

	// Assert: the emptier factory (0/10) is fed first and consumes the
	// whole batch, so the nearly-full one is left untouched.
	assert.Equal(t, int64(9), full.Contents[2400])
	assert.Equal(t, int64(10), empty.Contents[2400])
}

func TestRouteOutput_ChainsThroughStorage(t *testing.T) {
	// Arrange
	k := colony.NewColony(1, time.Now())
	src := newExtractor(1, 4000, time.Now(), time.Hour, time.Now().Add(time.Hour))
	hub := newStorage(2)
	warehouse := newStorage(3)

	k.Pins[src.ID] = src
	k.Pins[hub.ID] = hub
	k.Pins[warehouse.ID] = warehouse
	require.NoError(t, k.AddRoute(mustRoute(src.ID, hub.ID, water, 100)))
	require.NoError(t, k.AddRoute(mustRoute(hub.ID, warehouse.ID, water, 100)))

	// Act
	k.RouteOutput(src, map[int]int64{2400: 50}, time.Now(), nil)

	// Assert: output propagates from the first storage hop to the second.
	assert.Equal(t, int64(0), hub.Contents[2400])
	assert.Equal(t, int64(50), warehouse.Contents[2400])
}

func TestRouteInput_PullsFromStorageAndSchedulesConsumer(t *testing.T) {
	// Arrange
	k := colony.NewColony(1, time.Now())
	storageFacility := newStorage(1)
	storageFacility.Contents[2400] = 20
	storageFacility.Contents[2401] = 20
	factory := newAlloyFactory(2)

	k.Pins[storageFacility.ID] = storageFacility
	k.Pins[factory.ID] = factory
	require.NoError(t, k.AddRoute(mustRoute(storageFacility.ID, factory.ID, water, 10)))
	require.NoError(t, k.AddRoute(mustRoute(storageFacility.ID, factory.ID, ore, 10)))

	queue := colony.NewEventQueue()

	// Act
	k.RouteInput(factory, time.Now(), queue)

	// Assert
	assert.Equal(t, int64(10), factory.Contents[2400])
	assert.Equal(t, int64(10), factory.Contents[2401])
	assert.True(t, queue.Has(factory.ID))
}

func mustRoute(src, dst int64, c commodity.Type, qty int64) colony.Route {
	r, err := colony.NewRoute(src, dst, c, qty)
	if err != nil {
		panic(err)
	}
	return r
}
