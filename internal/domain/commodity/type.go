// Package commodity defines the static, database-backed notion of a
// tradeable planetary commodity: its type id, volume, and display name.
package commodity

import "fmt"

// Type is a value object identified by its integer type_id. Equality is by
// type_id alone; Volume and Name are descriptive metadata carried along for
// convenience so callers don't need a second lookup when accounting for
// capacity.
type Type struct {
	typeID int
	volume float64
	name   string
}

// New creates a commodity Type. Volume must be non-negative.
func New(typeID int, volume float64, name string) (Type, error) {
	if volume < 0 {
		return Type{}, fmt.Errorf("commodity %d: volume must be >= 0, got %f", typeID, volume)
	}
	return Type{typeID: typeID, volume: volume, name: name}, nil
}

// MustNew creates a Type, panicking if the volume is invalid. Intended for
// call sites reconstructing from already-validated storage.
func MustNew(typeID int, volume float64, name string) Type {
	t, err := New(typeID, volume, name)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Type) TypeID() int      { return t.typeID }
func (t Type) Volume() float64  { return t.volume }
func (t Type) Name() string     { return t.name }

// Equals compares two commodity types by type_id, per spec.
func (t Type) Equals(other Type) bool {
	return t.typeID == other.typeID
}

func (t Type) String() string {
	if t.name != "" {
		return t.name
	}
	return fmt.Sprintf("type#%d", t.typeID)
}
