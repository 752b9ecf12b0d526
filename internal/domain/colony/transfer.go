package colony

import "math"

// transfer moves up to quantity units of typeID from src to dst, subject to
// what's actually available and dst's acceptance rules (§4.7). available is
// the caller's view of what src currently has on offer — for a just-run
// producer this is the harvested batch, not src.Contents; for a
// storage-class source it mirrors src.Contents. maxOverride caps the
// amount further when non-nil (used by storage output routing's fair-share
// split). Returns the quantity actually accepted.
func transfer(src, dst *Facility, typeID int, quantity int64, available map[int]int64, maxOverride *int64) int64 {
	have, ok := available[typeID]
	if !ok || have <= 0 {
		return 0
	}

	amount := minInt64(have, quantity)
	if maxOverride != nil {
		amount = minInt64(amount, *maxOverride)
	}
	if amount <= 0 {
		return 0
	}

	var accepted int64
	switch {
	case dst.Kind == KindFactory:
		if dst.Factory == nil || dst.Factory.Schematic == nil {
			return 0
		}
		required, isInput := dst.Factory.Schematic.RequiredQuantityByID(typeID)
		if !isInput {
			return 0
		}
		current := dst.Contents[typeID]
		room := int64(required) - current
		if room < 0 {
			room = 0
		}
		accepted = minInt64(amount, room)

	case IsStorage(dst):
		volume := dst.commodityVolume(typeID)
		var roomUnits int64
		if volume <= 0 {
			roomUnits = amount
		} else {
			roomUnits = int64(math.Floor(dst.RemainingCapacity() / volume))
		}
		accepted = minInt64(amount, roomUnits)

	default: // Extractor never accepts transfers in.
		accepted = 0
	}

	if accepted <= 0 {
		return 0
	}

	if IsStorage(src) {
		src.removeContents(typeID, accepted)
	}
	dst.addContents(typeID, accepted)
	if dst.Kind == KindFactory {
		dst.Factory.HasReceivedInputs = true
	}

	return accepted
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
