package simulation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/planetarysim/colonysim/internal/application/mediator"
	"github.com/planetarysim/colonysim/internal/domain/colony"
)

// SimulateColonyCommand advances a colony's state to TargetTime.
type SimulateColonyCommand struct {
	Colony     *colony.Colony
	TargetTime time.Time
}

// SimulateColonyResponse carries the resulting colony and how it was
// produced.
type SimulateColonyResponse struct {
	Colony    *colony.Colony
	FromCache bool
}

// SimulateColonyHandler wraps colony.Simulate with the cache-consulting
// behaviour required by §6.5: a cache hit short-circuits the run entirely
// and reports full progress immediately.
type SimulateColonyHandler struct {
	cache Cache
}

func NewSimulateColonyHandler(cache Cache) *SimulateColonyHandler {
	return &SimulateColonyHandler{cache: cache}
}

func (h *SimulateColonyHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*SimulateColonyCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	runID := uuid.New()
	progress := ProgressFromContext(ctx)
	key := cmd.TargetTime.Unix()

	log.Printf("simulation run %s: colony %d -> %s", runID, cmd.Colony.ID, cmd.TargetTime)

	if h.cache != nil {
		if cached, hit, err := h.cache.Get(ctx, cmd.Colony.ID, key); err != nil {
			return nil, fmt.Errorf("consult simulation cache: %w", err)
		} else if hit {
			log.Printf("simulation run %s: cache hit, skipping event loop", runID)
			if progress != nil {
				progress(1.0)
			}
			return &SimulateColonyResponse{Colony: cached.Clone(), FromCache: true}, nil
		}
	}

	result := cmd.Colony.Clone()
	reportingProgress := func(fraction float64) {
		log.Printf("simulation run %s: %.0f%%", runID, fraction*100)
		if progress != nil {
			progress(fraction)
		}
	}
	if err := colony.Simulate(ctx, result, &cmd.TargetTime, reportingProgress); err != nil {
		return nil, fmt.Errorf("simulation run %s: simulate colony: %w", runID, err)
	}
	log.Printf("simulation run %s: complete, status %s", runID, result.Status)

	if h.cache != nil {
		if err := h.cache.Put(ctx, cmd.Colony.ID, key, result); err != nil {
			return nil, fmt.Errorf("populate simulation cache: %w", err)
		}
	}

	return &SimulateColonyResponse{Colony: result, FromCache: false}, nil
}

type progressContextKey struct{}

// WithProgress attaches a progress callback to ctx so handlers invoked
// through the mediator can still report incremental progress without it
// becoming part of the command payload.
func WithProgress(ctx context.Context, fn colony.ProgressFunc) context.Context {
	return context.WithValue(ctx, progressContextKey{}, fn)
}

// ProgressFromContext returns the progress callback attached by WithProgress,
// or nil if none was attached.
func ProgressFromContext(ctx context.Context) colony.ProgressFunc {
	fn, _ := ctx.Value(progressContextKey{}).(colony.ProgressFunc)
	return fn
}
