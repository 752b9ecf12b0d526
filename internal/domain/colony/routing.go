package colony

import (
	"sort"
	"time"
)

// RouteOutput routes a batch of just-produced commodities from src to its
// outgoing routes, per §4.8. Storage hops chain: a storage destination that
// receives something routes onward from its own outgoing routes using the
// amount it just received, which is how output propagates through a chain
// of storage facilities. visited guards against route cycles (§9), bounded
// by the facility count.
func (k *Colony) RouteOutput(src *Facility, produced map[int]int64, now time.Time, queue *EventQueue) {
	k.routeOutput(src, produced, now, queue, map[int64]bool{src.ID: true})
}

func (k *Colony) routeOutput(src *Facility, produced map[int]int64, now time.Time, queue *EventQueue, visited map[int64]bool) {
	if len(produced) == 0 {
		return
	}
	remaining := make(map[int]int64, len(produced))
	for t, q := range produced {
		remaining[t] = q
	}

	var processorRoutes, storageRoutes []Route
	for _, r := range k.routesFrom(src.ID) {
		if remaining[r.Commodity.TypeID()] <= 0 {
			continue
		}
		dst, ok := k.Pins[r.DestinationID]
		if !ok {
			continue
		}
		switch {
		case dst.Kind == KindFactory:
			processorRoutes = append(processorRoutes, r)
		case IsStorage(dst):
			storageRoutes = append(storageRoutes, r)
		}
	}

	sort.SliceStable(processorRoutes, func(i, j int) bool {
		di, dj := k.Pins[processorRoutes[i].DestinationID], k.Pins[processorRoutes[j].DestinationID]
		ei, ej := bufferEmptiness(di), bufferEmptiness(dj)
		if ei != ej {
			return ei > ej
		}
		return processorRoutes[i].DestinationID < processorRoutes[j].DestinationID
	})
	sort.SliceStable(storageRoutes, func(i, j int) bool {
		di, dj := k.Pins[storageRoutes[i].DestinationID], k.Pins[storageRoutes[j].DestinationID]
		ri, rj := di.RemainingCapacity(), dj.RemainingCapacity()
		if ri != rj {
			return ri < rj
		}
		return storageRoutes[i].DestinationID < storageRoutes[j].DestinationID
	})

	received := make(map[int64]map[int]int64)
	markReceived := func(destID int64, typeID int, amount int64) {
		if received[destID] == nil {
			received[destID] = make(map[int]int64)
		}
		received[destID][typeID] += amount
	}

	for _, r := range processorRoutes {
		if allZero(remaining) {
			break
		}
		typeID := r.Commodity.TypeID()
		if remaining[typeID] <= 0 {
			continue
		}
		dst := k.Pins[r.DestinationID]
		want := r.Quantity
		if remaining[typeID] < want {
			want = remaining[typeID]
		}
		accepted := transfer(src, dst, typeID, want, remaining, nil)
		if accepted > 0 {
			remaining[typeID] -= accepted
			markReceived(dst.ID, typeID, accepted)
		}
	}

	for i, r := range storageRoutes {
		typeID := r.Commodity.TypeID()
		if remaining[typeID] <= 0 {
			continue
		}
		after := int64(0)
		for _, later := range storageRoutes[i+1:] {
			if later.Commodity.TypeID() == typeID {
				after++
			}
		}
		override := ceilDiv(remaining[typeID], after+1)
		dst := k.Pins[r.DestinationID]
		accepted := transfer(src, dst, typeID, r.Quantity, remaining, &override)
		if accepted > 0 {
			remaining[typeID] -= accepted
			markReceived(dst.ID, typeID, accepted)
		}
	}

	for destID, amounts := range received {
		dst := k.Pins[destID]
		if IsConsumer(dst) && queue != nil {
			queue.Upsert(Schedule(dst, now), dst.ID)
		}
		if IsStorage(dst) && !visited[destID] {
			visited[destID] = true
			k.routeOutput(dst, amounts, now, queue, visited)
		}
	}
}

// RouteInput performs consumer-initiated input routing for d at time now,
// per §4.9: pull from every incoming route whose source is storage-class,
// and reschedule d if it received anything.
func (k *Colony) RouteInput(d *Facility, now time.Time, queue *EventQueue) {
	received := false
	for _, r := range k.routesTo(d.ID) {
		src, ok := k.Pins[r.SourceID]
		if !ok || !IsStorage(src) {
			continue
		}
		typeID := r.Commodity.TypeID()
		if transfer(src, d, typeID, r.Quantity, src.Contents, nil) > 0 {
			received = true
		}
	}
	if received && IsConsumer(d) && queue != nil {
		queue.Upsert(Schedule(d, now), d.ID)
	}
}

func bufferEmptiness(f *Facility) float64 {
	if f.Factory == nil || f.Factory.Schematic == nil {
		return 0
	}
	var totalRequired, totalCurrent int64
	for typeID, required := range f.Factory.Schematic.Inputs() {
		totalRequired += int64(required)
		cur := f.Contents[typeID.TypeID()]
		if cur > int64(required) {
			cur = int64(required)
		}
		totalCurrent += cur
	}
	if totalRequired == 0 {
		return 1
	}
	return 1 - float64(totalCurrent)/float64(totalRequired)
}

func allZero(m map[int]int64) bool {
	for _, v := range m {
		if v > 0 {
			return false
		}
	}
	return true
}

func ceilDiv(a, b int64) int64 {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
