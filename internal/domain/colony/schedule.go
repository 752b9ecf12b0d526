package colony

import "time"

// hasReceivedButLacksMaterials is the "inputs trickling in" case called out
// in §4.5 and §4.3 case 3: the factory has taken delivery of at least one
// input since its last cycle but does not yet have a full set.
func hasReceivedButLacksMaterials(f *Facility) bool {
	if f.Kind != KindFactory || f.Factory == nil || f.Factory.Schematic == nil {
		return false
	}
	if !f.Factory.HasReceivedInputs && !f.Factory.ReceivedInputsLastCycle {
		return false
	}
	return !hasEnoughInputs(f)
}

// Schedule computes the single scheduled time for f given the current
// simulation time now, per §4.5.
func Schedule(f *Facility, now time.Time) time.Time {
	if hasReceivedButLacksMaterials(f) && f.LastRunTime != nil {
		return f.LastRunTime.Add(durationFromSeconds(f.Factory.Schematic.CycleTimeSeconds()))
	}
	if t, ok := NextRunTime(f); ok {
		floor := now.Add(time.Second)
		if t.After(floor) {
			return t
		}
		return floor
	}
	return now.Add(time.Second)
}
