// Package extraction implements the closed-form extractor yield model: a
// deterministic, time-decayed noisy oscillation that predicts an
// extractor's per-cycle output for any cycle index (§4.1).
package extraction

import (
	"math"
	"time"
)

// CycleOutput returns the predicted output of cycle n (0-indexed) for an
// extractor with the given base value and cycle duration. Deterministic and
// referentially transparent.
func CycleOutput(base int, cycleTime time.Duration, n int) int64 {
	T := cycleTime.Seconds()
	barWidth := T / 900
	t := (float64(n) + 0.5) * barWidth
	decay := float64(base) / (1 + t*0.012)
	phase := math.Pow(float64(base), 0.7)
	sinPart := (math.Cos(phase+t/12) + math.Cos(phase/2+t/5) + math.Cos(t/2)) / 3
	if sinPart < 0 {
		sinPart = 0
	}
	barHeight := decay * (1 + 0.8*sinPart)
	output := math.Floor(barWidth * barHeight)
	if output < 0 {
		return 0
	}
	return int64(output)
}

// GetProgramOutput returns the output an extractor harvests when run at
// now, given its base value, install time and cycle time.
func GetProgramOutput(base int, installTime, now time.Time, cycleTime time.Duration) int64 {
	elapsed := now.Sub(installTime) + time.Second
	n := int(math.Floor(elapsed.Seconds()/cycleTime.Seconds())) - 1
	if n < 0 {
		n = 0
	}
	return CycleOutput(base, cycleTime, n)
}

// GetProgramOutputPrediction is an alias of GetProgramOutput for callers
// that want to preview a future harvest without mutating the extractor.
func GetProgramOutputPrediction(base int, installTime, now time.Time, cycleTime time.Duration) int64 {
	return GetProgramOutput(base, installTime, now, cycleTime)
}

// CurrentCycleIndex returns the 0-indexed cycle a running extractor is
// currently in at time now, or -1 if the extractor has already expired
// relative to its install/expiry window.
func CurrentCycleIndex(installTime, expiryTime, now time.Time, cycleTime time.Duration) int {
	cycleSeconds := cycleTime.Seconds()
	totalCycles := int(math.Floor(expiryTime.Sub(installTime).Seconds()/cycleSeconds)) - 1
	n := int(math.Floor(now.Sub(installTime).Seconds() / cycleSeconds))
	if n <= totalCycles {
		return n
	}
	return -1
}
