package simulation

import (
	"context"

	"github.com/planetarysim/colonysim/internal/domain/colony"
)

// Cache memoises simulation results keyed by colony id and target time, per
// §6.5. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, colonyID int64, targetEpochSeconds int64) (*colony.Colony, bool, error)
	Put(ctx context.Context, colonyID int64, targetEpochSeconds int64, result *colony.Colony) error
}
