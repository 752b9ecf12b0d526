package colony

import "github.com/planetarysim/colonysim/internal/domain/commodity"

// Overview is the derived summary of a colony's production graph and
// storage usage, per §4.11.
type Overview struct {
	Producing           map[int]commodity.Type
	Extracting          map[int]commodity.Type
	Consuming           map[int]commodity.Type
	FinalProducts       map[int]commodity.Type
	StorageCapacity     float64
	FinalProductsUsed   float64
	OtherUsed           float64
}

// BuildOverview derives an Overview from the colony's current facility
// states.
func BuildOverview(K *Colony) Overview {
	producing := make(map[int]commodity.Type)
	extracting := make(map[int]commodity.Type)
	consuming := make(map[int]commodity.Type)

	for _, f := range K.Pins {
		switch f.Kind {
		case KindFactory:
			if f.Factory == nil || f.Factory.Schematic == nil {
				continue
			}
			producing[f.Factory.Schematic.OutputType().TypeID()] = f.Factory.Schematic.OutputType()
			for c := range f.Factory.Schematic.Inputs() {
				consuming[c.TypeID()] = c
			}
		case KindExtractor:
			if f.Extractor == nil || f.Extractor.ProductType == nil {
				continue
			}
			extracting[f.Extractor.ProductType.TypeID()] = *f.Extractor.ProductType
		}
	}

	finalProducts := make(map[int]commodity.Type)
	for id, c := range producing {
		if _, consumed := consuming[id]; !consumed {
			finalProducts[id] = c
		}
	}
	for id, c := range extracting {
		if _, consumed := consuming[id]; !consumed {
			finalProducts[id] = c
		}
	}

	finalDestinations := make(map[int64]bool)
	for _, r := range K.Routes {
		if _, isFinal := finalProducts[r.Commodity.TypeID()]; !isFinal {
			continue
		}
		dst, ok := K.Pins[r.DestinationID]
		if !ok || !IsStorage(dst) {
			continue
		}
		finalDestinations[dst.ID] = true
	}

	var capacity, finalUsed, otherUsed float64
	for id := range finalDestinations {
		f := K.Pins[id]
		capacity += f.Capacity()
		for typeID, qty := range f.Contents {
			volume := f.commodityVolume(typeID) * float64(qty)
			if _, isFinal := finalProducts[typeID]; isFinal {
				finalUsed += volume
			} else {
				otherUsed += volume
			}
		}
	}

	return Overview{
		Producing:         producing,
		Extracting:        extracting,
		Consuming:         consuming,
		FinalProducts:     finalProducts,
		StorageCapacity:   capacity,
		FinalProductsUsed: finalUsed,
		OtherUsed:         otherUsed,
	}
}
