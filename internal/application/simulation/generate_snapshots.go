package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/planetarysim/colonysim/internal/application/mediator"
	"github.com/planetarysim/colonysim/internal/domain/colony"
)

// GenerateSnapshotsCommand requests a timeline for a colony, sampled every
// half of its shortest running cycle time (0.1 h when nothing runs), per
// §4.12. MaxCount and MaxHorizon are the config.SimulationConfig
// values (snapshot_cap, default_horizon_hours); a zero value falls back to
// colony.GenerateSnapshots' own defaults.
type GenerateSnapshotsCommand struct {
	Colony     *colony.Colony
	MaxCount   int
	MaxHorizon time.Duration
}

// GenerateSnapshotsResponse carries the generated timeline.
type GenerateSnapshotsResponse struct {
	Snapshots []colony.Snapshot
}

// GenerateSnapshotsHandler wraps colony.GenerateSnapshots.
type GenerateSnapshotsHandler struct{}

func NewGenerateSnapshotsHandler() *GenerateSnapshotsHandler {
	return &GenerateSnapshotsHandler{}
}

func (h *GenerateSnapshotsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*GenerateSnapshotsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	snapshots, err := colony.GenerateSnapshots(ctx, cmd.Colony, cmd.MaxCount, cmd.MaxHorizon)
	if err != nil {
		return nil, fmt.Errorf("generate snapshots: %w", err)
	}

	return &GenerateSnapshotsResponse{Snapshots: snapshots}, nil
}
