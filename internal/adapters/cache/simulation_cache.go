// Package cache implements the process-wide simulation cache of §6.5: a
// mapping (colony_id, target_time_epoch_seconds) -> simulated Colony with
// last-writer-wins semantics under concurrent access.
package cache

import (
	"context"
	"sync"

	"github.com/planetarysim/colonysim/internal/domain/colony"
)

type cacheKey struct {
	colonyID    int64
	targetEpoch int64
}

// SimulationCache is a sync.Map-backed implementation of
// simulation.Cache. It never evicts (callers choose the scope of the cache
// instance, e.g. one per daemon process).
type SimulationCache struct {
	entries sync.Map // cacheKey -> *colony.Colony
}

// New builds an empty SimulationCache.
func New() *SimulationCache {
	return &SimulationCache{}
}

// Get returns the cached colony for (colonyID, targetEpochSeconds), if any.
func (c *SimulationCache) Get(ctx context.Context, colonyID int64, targetEpochSeconds int64) (*colony.Colony, bool, error) {
	v, ok := c.entries.Load(cacheKey{colonyID, targetEpochSeconds})
	if !ok {
		return nil, false, nil
	}
	return v.(*colony.Colony), true, nil
}

// Put stores result for (colonyID, targetEpochSeconds). A concurrent Put for
// the same key overwrites the previous value (last-writer-wins, per §5).
func (c *SimulationCache) Put(ctx context.Context, colonyID int64, targetEpochSeconds int64, result *colony.Colony) error {
	c.entries.Store(cacheKey{colonyID, targetEpochSeconds}, result)
	return nil
}
