package colony

import (
	"context"
	"math"
	"time"
)

// Snapshot is one entry of a generated timeline: the colony's state
// ElapsedMinutes after the timeline's starting point.
type Snapshot struct {
	ElapsedMinutes int
	Colony         *Colony
}

// DefaultSnapshotHorizon and DefaultSnapshotCap are the §4.12 fallbacks
// used when GenerateSnapshots is called with a non-positive maxCount or
// maxHorizon (e.g. a zero-value config.SimulationConfig).
const DefaultSnapshotHorizon = 30 * 24 * time.Hour
const DefaultSnapshotCap = 300

// GenerateSnapshots produces a timeline of simulated colony states, per
// §4.12. K is not mutated; every returned Colony is an independent clone.
// maxCount and maxHorizon bound the decimated result and the simulated
// horizon respectively; a value <= 0 falls back to the package default.
func GenerateSnapshots(ctx context.Context, K *Colony, maxCount int, maxHorizon time.Duration) ([]Snapshot, error) {
	if maxCount <= 0 {
		maxCount = DefaultSnapshotCap
	}
	if maxHorizon <= 0 {
		maxHorizon = DefaultSnapshotHorizon
	}

	start := K.Clone()
	snapshots := []Snapshot{{ElapsedMinutes: 0, Colony: start.Clone()}}

	intervalHours := shortestRunningCycleHours(start)
	if intervalHours <= 0 {
		intervalHours = 0.1
	}

	current := start
	for i := 1; ; i++ {
		elapsed := time.Duration(float64(i) * intervalHours * float64(time.Hour))
		if elapsed >= maxHorizon {
			break
		}
		target := start.CurrentSimTime.Add(elapsed)

		clone := current.Clone()
		if err := Simulate(ctx, clone, &target, nil); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, Snapshot{ElapsedMinutes: int(elapsed.Minutes()), Colony: clone})
		current = clone

		if anyExtractorExpiredBy(clone, target) || !isWorking(clone) {
			break
		}
	}

	return decimate(snapshots, maxCount), nil
}

func shortestRunningCycleHours(K *Colony) float64 {
	var min time.Duration
	found := false
	for _, f := range K.Pins {
		switch f.Kind {
		case KindExtractor:
			if f.IsActive && f.Extractor != nil {
				if !found || f.Extractor.CycleTime < min {
					min, found = f.Extractor.CycleTime, true
				}
			}
		case KindFactory:
			if CanRun(f) && f.Factory != nil && f.Factory.Schematic != nil {
				cycle := durationFromSeconds(f.Factory.Schematic.CycleTimeSeconds())
				if !found || cycle < min {
					min, found = cycle, true
				}
			}
		}
	}
	if !found {
		return 0
	}
	return min.Hours() / 2
}

func anyExtractorExpiredBy(K *Colony, target time.Time) bool {
	for _, f := range K.Pins {
		if f.Kind == KindExtractor && f.IsActive && f.Extractor != nil && !f.Extractor.ExpiryTime.After(target) {
			return true
		}
	}
	return false
}

// decimate keeps every snapshot when the count is within budget, otherwise
// preserves index 0 and the last index and strides through the rest, per
// §4.12's post-compression rule.
func decimate(snapshots []Snapshot, maxCount int) []Snapshot {
	if len(snapshots) <= maxCount {
		return snapshots
	}
	stride := int(math.Round(float64(len(snapshots)) / float64(maxCount)))
	if stride < 1 {
		stride = 1
	}

	var out []Snapshot
	for i := 0; i < len(snapshots); i += stride {
		out = append(out, snapshots[i])
	}
	last := snapshots[len(snapshots)-1]
	if out[len(out)-1].ElapsedMinutes != last.ElapsedMinutes {
		out = append(out, last)
	}
	return out
}
