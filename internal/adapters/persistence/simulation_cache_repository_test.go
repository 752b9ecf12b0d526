package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/adapters/persistence"
	"github.com/planetarysim/colonysim/internal/domain/colony"
	"github.com/planetarysim/colonysim/test/helpers"
)

func TestGormSimulationCacheRepository_PutAndGet(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSimulationCacheRepository(db)

	k := colony.NewColony(42, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC))
	k.Status = "running"

	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, 42, 1000, k))

	got, found, err := repo.Get(ctx, 42, 1000)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, k.ID, got.ID)
	assert.Equal(t, k.Status, got.Status)

	_, found, err = repo.Get(ctx, 42, 2000)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGormSimulationCacheRepository_PutOverwrites(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSimulationCacheRepository(db)
	ctx := context.Background()

	first := colony.NewColony(7, time.Now().UTC())
	first.Status = "running"
	require.NoError(t, repo.Put(ctx, 7, 500, first))

	second := colony.NewColony(7, time.Now().UTC())
	second.Status = "halted"
	require.NoError(t, repo.Put(ctx, 7, 500, second))

	got, found, err := repo.Get(ctx, 7, 500)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "halted", got.Status)
}
