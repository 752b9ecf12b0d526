package colony

import "time"

// attemptBufferRefill pulls inputs a factory still needs from upstream
// storage facilities, per §4.6. For each input type still short, every
// incoming route carrying that type is tried in order; any non-zero
// transfer marks has_received_inputs. If the factory ends up with enough
// inputs, it is (re)scheduled.
func (k *Colony) attemptBufferRefill(f *Facility, now time.Time, queue *EventQueue) {
	if f.Kind != KindFactory || f.Factory == nil || f.Factory.Schematic == nil {
		return
	}

	for typeID, required := range f.Factory.Schematic.Inputs() {
		needed := int64(required) - f.Contents[typeID.TypeID()]
		if needed <= 0 {
			continue
		}
		for _, r := range k.routesTo(f.ID) {
			if r.Commodity.TypeID() != typeID.TypeID() {
				continue
			}
			src, ok := k.Pins[r.SourceID]
			if !ok || !IsStorage(src) {
				continue
			}
			available := src.Contents[typeID.TypeID()]
			if available <= 0 {
				continue
			}
			want := minInt64(needed, r.Quantity)
			accepted := transfer(src, f, typeID.TypeID(), want, src.Contents, nil)
			if accepted > 0 {
				needed -= accepted
			}
			if needed <= 0 {
				break
			}
		}
	}

	if hasEnoughInputs(f) && queue != nil {
		queue.Upsert(Schedule(f, now), f.ID)
	}
}
