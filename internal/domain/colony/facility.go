// Package colony implements the discrete-event planetary industry
// simulator: facilities, routes, the event queue, and the scheduler that
// advances a colony from its current simulation time to a target time.
package colony

import (
	"math"
	"time"

	"github.com/planetarysim/colonysim/internal/domain/commodity"
	"github.com/planetarysim/colonysim/internal/domain/schematic"
)

// Kind identifies which of the five facility variants a Facility is. Go has
// no sum types, so Facility is a single tagged struct: Kind selects which of
// the variant-only fields below are meaningful, and the capability queries
// in capabilities.go are pure functions over Kind plus that state.
type Kind string

const (
	KindExtractor      Kind = "EXTRACTOR"
	KindFactory        Kind = "FACTORY"
	KindStorage        Kind = "STORAGE"
	KindLaunchpad      Kind = "LAUNCHPAD"
	KindCommandCenter  Kind = "COMMAND_CENTER"
)

// Capacities in cubic metres for the fixed-capacity variants (§3.2). Zero
// means "no capacity" (Extractor, Factory: transient/buffer contents).
const (
	CapacityStorage       = 12000.0
	CapacityLaunchpad     = 10000.0
	CapacityCommandCenter = 500.0
)

// Facility is one pin on a colony: an extractor, factory, or storage-class
// facility (storage, launchpad, command center). Common fields live at the
// top level; per-variant state lives in the embedded pointer structs, which
// are nil unless Kind selects them.
type Facility struct {
	ID           int64
	TypeID       int
	Kind         Kind
	Status       string
	IsActive     bool
	Contents     map[int]int64 // commodity type_id -> quantity
	CapacityUsed float64
	LastRunTime  *time.Time

	Extractor *ExtractorState // non-nil iff Kind == KindExtractor
	Factory   *FactoryState   // non-nil iff Kind == KindFactory

	commodities map[int]commodity.Type // type_id -> Type, for volume lookups
}

// ExtractorState holds the extra fields of an Extractor pin.
type ExtractorState struct {
	ProductType *commodity.Type // nil until assigned
	BaseValue   int
	InstallTime time.Time
	ExpiryTime  time.Time
	CycleTime   time.Duration
}

// FactoryState holds the extra fields of a Factory pin.
type FactoryState struct {
	Schematic               *schematic.Schematic
	LastCycleStartTime      *time.Time
	HasReceivedInputs       bool
	ReceivedInputsLastCycle bool
}

// NewFacility constructs a facility shell with empty contents. Callers then
// set the Extractor or Factory field directly, or leave both nil for a
// storage-class pin.
func NewFacility(id int64, typeID int, kind Kind) *Facility {
	return &Facility{
		ID:          id,
		TypeID:      typeID,
		Kind:        kind,
		Contents:    make(map[int]int64),
		commodities: make(map[int]commodity.Type),
	}
}

// Capacity returns the fixed capacity of storage-class facilities, or 0 for
// Extractor/Factory (whose contents are transient/buffer, per §3.2).
func (f *Facility) Capacity() float64 {
	switch f.Kind {
	case KindStorage:
		return CapacityStorage
	case KindLaunchpad:
		return CapacityLaunchpad
	case KindCommandCenter:
		return CapacityCommandCenter
	default:
		return 0
	}
}

// RegisterCommodity makes a commodity's volume known to this facility for
// capacity accounting. The simulator registers every commodity type that
// appears in a colony's routes/schematics/products before running.
func (f *Facility) RegisterCommodity(c commodity.Type) {
	f.commodities[c.TypeID()] = c
}

func (f *Facility) commodityVolume(typeID int) float64 {
	if c, ok := f.commodities[typeID]; ok {
		return c.Volume()
	}
	return 0
}

// RemainingCapacity returns max(capacity - capacity_used, 0) for
// storage-class facilities, or +Inf for Extractor/Factory (no bound).
func (f *Facility) RemainingCapacity() float64 {
	if !IsStorage(f) {
		return math.Inf(1)
	}
	remaining := f.Capacity() - f.CapacityUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// addContents credits quantity units of typeID and updates capacity_used,
// maintaining the §8.1 volume-accounting invariant.
func (f *Facility) addContents(typeID int, quantity int64) {
	if quantity <= 0 {
		return
	}
	f.Contents[typeID] += quantity
	f.CapacityUsed += f.commodityVolume(typeID) * float64(quantity)
}

// removeContents debits up to quantity units of typeID, clamping at zero,
// and updates capacity_used to match.
func (f *Facility) removeContents(typeID int, quantity int64) int64 {
	have := f.Contents[typeID]
	taken := quantity
	if taken > have {
		taken = have
	}
	if taken <= 0 {
		return 0
	}
	f.Contents[typeID] -= taken
	if f.Contents[typeID] == 0 {
		delete(f.Contents, typeID)
	}
	f.CapacityUsed -= f.commodityVolume(typeID) * float64(taken)
	if f.CapacityUsed < 0 {
		f.CapacityUsed = 0
	}
	return taken
}

// Clone performs a deep copy, duplicating the contents map and variant
// state, per the simulator's cloning discipline (§3.6, §9).
func (f *Facility) Clone() *Facility {
	clone := &Facility{
		ID:           f.ID,
		TypeID:       f.TypeID,
		Kind:         f.Kind,
		Status:       f.Status,
		IsActive:     f.IsActive,
		Contents:     make(map[int]int64, len(f.Contents)),
		CapacityUsed: f.CapacityUsed,
		commodities:  make(map[int]commodity.Type, len(f.commodities)),
	}
	for k, v := range f.Contents {
		clone.Contents[k] = v
	}
	for k, v := range f.commodities {
		clone.commodities[k] = v
	}
	if f.LastRunTime != nil {
		t := *f.LastRunTime
		clone.LastRunTime = &t
	}
	if f.Extractor != nil {
		e := *f.Extractor
		clone.Extractor = &e
	}
	if f.Factory != nil {
		ft := *f.Factory
		if f.Factory.LastCycleStartTime != nil {
			t := *f.Factory.LastCycleStartTime
			ft.LastCycleStartTime = &t
		}
		clone.Factory = &ft
	}
	return clone
}
