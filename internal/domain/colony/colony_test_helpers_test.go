package colony_test

import (
	"time"

	"github.com/planetarysim/colonysim/internal/domain/colony"
	"github.com/planetarysim/colonysim/internal/domain/commodity"
	"github.com/planetarysim/colonysim/internal/domain/schematic"
)

var (
	water = commodity.MustNew(2400, 0.38, "Water")
	ore   = commodity.MustNew(2401, 0.3, "Ore")
	alloy = commodity.MustNew(2500, 0.6, "Alloy")
)

func newExtractor(id int64, baseValue int, install time.Time, cycle time.Duration, expiry time.Time) *colony.Facility {
	f := colony.NewFacility(id, 1, colony.KindExtractor)
	product := water
	f.Extractor = &colony.ExtractorState{
		ProductType: &product,
		BaseValue:   baseValue,
		InstallTime: install,
		ExpiryTime:  expiry,
		CycleTime:   cycle,
	}
	f.IsActive = true
	f.RegisterCommodity(water)
	return f
}

func newAlloyFactory(id int64) *colony.Facility {
	f := colony.NewFacility(id, 2, colony.KindFactory)
	s, err := schematic.New(1800, alloy, 5, map[commodity.Type]int{
		water: 10,
		ore:   10,
	})
	if err != nil {
		panic(err)
	}
	f.Factory = &colony.FactoryState{Schematic: s}
	f.RegisterCommodity(water)
	f.RegisterCommodity(ore)
	f.RegisterCommodity(alloy)
	return f
}

func newStorage(id int64) *colony.Facility {
	f := colony.NewFacility(id, 3, colony.KindStorage)
	f.RegisterCommodity(water)
	f.RegisterCommodity(ore)
	f.RegisterCommodity(alloy)
	return f
}
