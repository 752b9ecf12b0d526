package colony

import (
	"time"

	"github.com/planetarysim/colonysim/internal/domain/extraction"
)

// RunResult is the outcome of running a factory for one scheduler step
// (§4.4).
type RunResult int

const (
	NotProduced RunResult = iota
	StartedCycle
	CompletedCycle
)

func (r RunResult) String() string {
	switch r {
	case StartedCycle:
		return "StartedCycle"
	case CompletedCycle:
		return "CompletedCycle"
	default:
		return "NotProduced"
	}
}

// RunExtractor runs an extractor at time now and returns the harvested
// commodities (§4.4): the output is credited to contents and immediately
// set aside for routing, so contents/capacity_used return to their
// pre-harvest values.
func RunExtractor(f *Facility, now time.Time) map[int]int64 {
	if f.Kind != KindExtractor || f.Extractor == nil || f.Extractor.ProductType == nil {
		return nil
	}
	output := extraction.GetProgramOutput(f.Extractor.BaseValue, f.Extractor.InstallTime, now, f.Extractor.CycleTime)
	productTypeID := f.Extractor.ProductType.TypeID()

	f.addContents(productTypeID, output)
	harvested := f.removeContents(productTypeID, output)

	f.LastRunTime = timePtr(now)
	if !f.Extractor.ExpiryTime.After(now) {
		f.IsActive = false
	}

	if harvested <= 0 {
		return nil
	}
	return map[int]int64{productTypeID: harvested}
}

// runFactoryStep runs the core §4.4 factory logic for one scheduler step,
// excluding buffer refill: refill needs the colony's routes and other
// facilities, so it is layered on top by RunFactory in colony.go. When this
// step newly starts a cycle, startedNewCycle reports it so the caller knows
// to attempt a refill; a completed cycle is reported through result
// (CompletedCycle) instead, with startedNewCycle false.
func runFactoryStep(f *Facility, now time.Time) (result RunResult, harvested map[int]int64, startedNewCycle bool) {
	s := f.Factory.Schematic
	cycle := durationFromSeconds(s.CycleTimeSeconds())

	if f.IsActive && f.Factory.LastCycleStartTime != nil {
		cycleEnd := f.Factory.LastCycleStartTime.Add(cycle)
		if now.Before(cycleEnd) {
			return StartedCycle, nil, false
		}

		outputTypeID := s.OutputType().TypeID()
		f.addContents(outputTypeID, int64(s.OutputQuantity()))
		out := f.removeContents(outputTypeID, int64(s.OutputQuantity()))
		f.Factory.LastCycleStartTime = nil
		f.IsActive = false
		f.LastRunTime = timePtr(now)

		if out <= 0 {
			return CompletedCycle, nil, false
		}
		return CompletedCycle, map[int]int64{outputTypeID: out}, false
	}

	if f.LastRunTime != nil && now.Before(f.LastRunTime.Add(cycle)) && !hasEnoughInputs(f) {
		return NotProduced, nil, false
	}

	if hasEnoughInputs(f) {
		startFactoryCycle(f, now)
		f.LastRunTime = timePtr(now)
		return StartedCycle, nil, true
	}

	f.IsActive = false
	f.LastRunTime = timePtr(now)
	rollInputFlags(f)
	return NotProduced, nil, false
}

// startFactoryCycle consumes one batch of every input and marks the factory
// as mid-cycle, rolling the has-received-inputs flags per §4.4.
func startFactoryCycle(f *Facility, now time.Time) {
	for typeID, required := range f.Factory.Schematic.Inputs() {
		f.removeContents(typeID.TypeID(), int64(required))
	}
	f.IsActive = true
	f.Factory.LastCycleStartTime = timePtr(now)
	rollInputFlags(f)
}

// rollInputFlags advances received_inputs_last_cycle to the prior
// has_received_inputs value and clears has_received_inputs, per §4.4.
func rollInputFlags(f *Facility) {
	f.Factory.ReceivedInputsLastCycle = f.Factory.HasReceivedInputs
	f.Factory.HasReceivedInputs = false
}

func timePtr(t time.Time) *time.Time {
	return &t
}
