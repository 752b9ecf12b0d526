package colony

import "time"

// NextRunTime computes when a facility would next run on its own cadence,
// per §4.3. A false second return means "no determinate time" — for an
// inactive factory with enough inputs this means "run immediately", which
// Schedule interprets as now+1s; for anything else with no history it means
// "not yet scheduled".
func NextRunTime(f *Facility) (time.Time, bool) {
	switch f.Kind {
	case KindExtractor:
		if !f.IsActive {
			return time.Time{}, false
		}
		if f.LastRunTime == nil {
			return time.Time{}, false
		}
		return f.LastRunTime.Add(f.Extractor.CycleTime), true

	case KindFactory:
		if f.Factory == nil || f.Factory.Schematic == nil {
			return time.Time{}, false
		}
		s := f.Factory.Schematic
		cycle := durationFromSeconds(s.CycleTimeSeconds())

		if f.IsActive && f.Factory.LastCycleStartTime != nil {
			return f.Factory.LastCycleStartTime.Add(cycle), true
		}
		if !f.IsActive && hasEnoughInputs(f) {
			return time.Time{}, false
		}
		if f.Factory.HasReceivedInputs || f.Factory.ReceivedInputsLastCycle {
			if f.LastRunTime == nil {
				return time.Time{}, false
			}
			return f.LastRunTime.Add(cycle), true
		}
		if f.LastRunTime != nil {
			return f.LastRunTime.Add(cycle), true
		}
		return time.Time{}, false

	default:
		return time.Time{}, false
	}
}

func durationFromSeconds(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
