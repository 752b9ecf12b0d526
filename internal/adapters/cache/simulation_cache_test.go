package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/adapters/cache"
	"github.com/planetarysim/colonysim/internal/domain/colony"
)

func TestSimulationCache_GetMiss(t *testing.T) {
	c := cache.New()
	_, found, err := c.Get(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSimulationCache_PutThenGet(t *testing.T) {
	c := cache.New()
	k := colony.NewColony(1, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC))

	ctx := context.Background()
	require.NoError(t, c.Put(ctx, 1, 100, k))

	got, found, err := c.Get(ctx, 1, 100)
	require.NoError(t, err)
	require.True(t, found)
	assert.Same(t, k, got)
}

func TestSimulationCache_LastWriterWins(t *testing.T) {
	c := cache.New()
	ctx := context.Background()

	first := colony.NewColony(2, time.Now().UTC())
	first.Status = "running"
	second := colony.NewColony(2, time.Now().UTC())
	second.Status = "halted"

	require.NoError(t, c.Put(ctx, 2, 100, first))
	require.NoError(t, c.Put(ctx, 2, 100, second))

	got, found, err := c.Get(ctx, 2, 100)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "halted", got.Status)
}
