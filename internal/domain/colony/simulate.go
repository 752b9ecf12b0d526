package colony

import (
	"context"
	"time"

	"github.com/planetarysim/colonysim/internal/domain/shared"
)

// ProgressFunc is invoked periodically during Simulate with a fraction in
// [0,1] estimating how far the run has advanced toward T_end.
type ProgressFunc func(fraction float64)

// Simulate advances colony K from its current simulation time to T_end (or
// indefinitely if T_end is nil), per §4.10. K is mutated in place — callers
// that need to keep a pristine copy must Clone first (§3.6). Simulate
// checks ctx for cancellation between events and returns a
// shared.CancelledError if the caller gives up.
func Simulate(ctx context.Context, K *Colony, T_end *time.Time, progress ProgressFunc) error {
	startTime := K.CurrentSimTime
	queue := NewEventQueue()

	preSettleStalledFactories(K)

	for _, f := range K.Pins {
		if IsStorage(f) {
			continue
		}
		if f.Kind == KindFactory && f.IsActive && f.Factory != nil && f.Factory.LastCycleStartTime != nil && f.Factory.Schematic != nil {
			cycleEnd := f.Factory.LastCycleStartTime.Add(durationFromSeconds(f.Factory.Schematic.CycleTimeSeconds()))
			if cycleEnd.After(K.CurrentSimTime) {
				queue.Upsert(cycleEnd, f.ID)
				continue
			}
		}
		if CanRun(f) {
			queue.Upsert(Schedule(f, K.CurrentSimTime), f.ID)
		}
	}

	var simEndTime *time.Time
	processed := 0
	lastReported := -1.0

	for {
		select {
		case <-ctx.Done():
			return shared.NewCancelledError("simulate")
		default:
		}

		ev, ok := queue.PopNext()
		if !ok {
			break
		}
		if T_end != nil && ev.ScheduledTime.After(*T_end) {
			break
		}
		if simEndTime != nil && ev.ScheduledTime.After(*simEndTime) {
			break
		}

		K.CurrentSimTime = ev.ScheduledTime
		processed++

		if progress != nil {
			fraction := progressFraction(startTime, T_end, K.CurrentSimTime)
			if processed%100 == 0 || fraction-lastReported >= 0.01 {
				progress(fraction)
				lastReported = fraction
			}
		}

		f, ok := K.Pins[ev.FacilityID]
		if ok {
			runEvent(K, f, ev.ScheduledTime, queue)
		}

		haltNow := T_end == nil
		if processed%50 == 0 || haltNow {
			refreshStatuses(K)
			if !isWorking(K) {
				t := ev.ScheduledTime
				simEndTime = &t
			}
		}
	}

	end := startTime
	if T_end != nil {
		end = *T_end
	}
	if simEndTime != nil && (T_end == nil || simEndTime.Before(*T_end)) {
		end = *simEndTime
	}
	K.CurrentSimTime = end

	for _, f := range K.Pins {
		if f.Kind == KindFactory && !f.IsActive && hasEnoughInputs(f) {
			K.RunFactory(f, K.CurrentSimTime, nil)
		}
	}

	refreshStatuses(K)
	K.Status = colonyStatus(K)
	K.Overview = BuildOverview(K)

	return nil
}

func runEvent(K *Colony, f *Facility, t time.Time, queue *EventQueue) {
	eligible := CanActivate(f) || IsActive(f) || (f.Kind == KindFactory && hasEnoughInputs(f))
	if !eligible {
		return
	}

	if CanRun(f) {
		var commodities map[int]int64
		switch f.Kind {
		case KindExtractor:
			commodities = RunExtractor(f, t)
		case KindFactory:
			_, commodities = K.RunFactory(f, t, queue)
		}

		if IsConsumer(f) {
			K.RouteInput(f, t, queue)
		}
		if IsActive(f) || CanActivate(f) {
			queue.Upsert(Schedule(f, t), f.ID)
		}
		if len(commodities) > 0 {
			K.RouteOutput(f, commodities, t, queue)
		}
		return
	}

	if CanActivate(f) || IsActive(f) {
		queue.Upsert(Schedule(f, t), f.ID)
	}
}

// preSettleStalledFactories deposits the output of any factory whose cycle
// already ended at or before the colony's current time, before the event
// queue is even seeded (§4.10 step 1).
func preSettleStalledFactories(K *Colony) {
	for _, f := range K.Pins {
		if f.Kind != KindFactory || f.Factory == nil || f.Factory.Schematic == nil {
			continue
		}
		if !f.IsActive || f.Factory.LastCycleStartTime == nil {
			continue
		}
		cycleEnd := f.Factory.LastCycleStartTime.Add(durationFromSeconds(f.Factory.Schematic.CycleTimeSeconds()))
		if cycleEnd.After(K.CurrentSimTime) {
			continue
		}
		outputTypeID := f.Factory.Schematic.OutputType().TypeID()
		f.addContents(outputTypeID, int64(f.Factory.Schematic.OutputQuantity()))
		harvested := f.removeContents(outputTypeID, int64(f.Factory.Schematic.OutputQuantity()))
		f.Factory.LastCycleStartTime = nil
		if harvested > 0 {
			K.RouteOutput(f, map[int]int64{outputTypeID: harvested}, K.CurrentSimTime, nil)
		}
	}
}

// isWorking implements the §4.10 step 4 early-halt predicate.
func isWorking(K *Colony) bool {
	for _, f := range K.Pins {
		switch f.Kind {
		case KindExtractor:
			if f.IsActive && f.Extractor != nil && f.Extractor.ExpiryTime.After(K.CurrentSimTime) {
				return true
			}
		case KindFactory:
			if f.IsActive || hasEnoughInputs(f) {
				return true
			}
		}
	}
	return false
}

// refreshStatuses keeps each facility's Status string in sync with its
// derived active/running state, for external observers (snapshot, CLI).
func refreshStatuses(K *Colony) {
	for _, f := range K.Pins {
		if IsActive(f) {
			f.Status = "ACTIVE"
		} else {
			f.Status = "IDLE"
		}
	}
}

func colonyStatus(K *Colony) string {
	if isWorking(K) {
		return "WORKING"
	}
	return "IDLE"
}

func progressFraction(start time.Time, end *time.Time, now time.Time) float64 {
	if end == nil {
		return 0
	}
	total := end.Sub(start).Seconds()
	if total <= 0 {
		return 1
	}
	elapsed := now.Sub(start).Seconds()
	f := elapsed / total
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
