// Package schematic models a factory recipe (a planetary schematic row) and
// the breadth-first resolver that expands a target product into its P0 base
// resources.
package schematic

import (
	"fmt"

	"github.com/planetarysim/colonysim/internal/domain/commodity"
)

// Schematic is a factory recipe: a positive cycle time, one output good and
// quantity, and an unordered set of required input quantities. Inputs carry
// no duplicate commodity types.
type Schematic struct {
	cycleTimeSeconds float64
	outputType       commodity.Type
	outputQuantity   int
	inputs           map[int]inputLine // keyed by commodity type_id
}

type inputLine struct {
	commodity commodity.Type
	quantity  int
}

// New validates and constructs a Schematic. Returns a MalformedSchematicError
// (via the caller's error wrapping) by returning a plain error here; callers
// that load schematics from the static database translate this into
// shared.MalformedSchematicError and skip the row per §7.
func New(cycleTimeSeconds float64, output commodity.Type, outputQuantity int, inputs map[commodity.Type]int) (*Schematic, error) {
	if cycleTimeSeconds <= 0 {
		return nil, fmt.Errorf("cycle_time must be positive, got %f", cycleTimeSeconds)
	}
	if outputQuantity <= 0 {
		return nil, fmt.Errorf("output_quantity must be positive, got %d", outputQuantity)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("schematic for output %d has no inputs", output.TypeID())
	}

	lines := make(map[int]inputLine, len(inputs))
	for c, qty := range inputs {
		if qty <= 0 {
			return nil, fmt.Errorf("input %d quantity must be positive, got %d", c.TypeID(), qty)
		}
		if _, dup := lines[c.TypeID()]; dup {
			return nil, fmt.Errorf("duplicate input type %d", c.TypeID())
		}
		lines[c.TypeID()] = inputLine{commodity: c, quantity: qty}
	}

	return &Schematic{
		cycleTimeSeconds: cycleTimeSeconds,
		outputType:       output,
		outputQuantity:   outputQuantity,
		inputs:           lines,
	}, nil
}

func (s *Schematic) CycleTimeSeconds() float64 { return s.cycleTimeSeconds }
func (s *Schematic) OutputType() commodity.Type { return s.outputType }
func (s *Schematic) OutputQuantity() int        { return s.outputQuantity }

// Inputs returns a copy of the input quantities keyed by commodity type.
func (s *Schematic) Inputs() map[commodity.Type]int {
	out := make(map[commodity.Type]int, len(s.inputs))
	for _, line := range s.inputs {
		out[line.commodity] = line.quantity
	}
	return out
}

// RequiredQuantity returns the quantity required of a given input type, and
// whether that type is an input at all.
func (s *Schematic) RequiredQuantity(c commodity.Type) (int, bool) {
	line, ok := s.inputs[c.TypeID()]
	if !ok {
		return 0, false
	}
	return line.quantity, true
}

// RequiredQuantityByID is RequiredQuantity keyed by commodity type id rather
// than a full commodity.Type, for callers that only have the id on hand.
func (s *Schematic) RequiredQuantityByID(typeID int) (int, bool) {
	line, ok := s.inputs[typeID]
	if !ok {
		return 0, false
	}
	return line.quantity, true
}

// HasInput reports whether c is one of this schematic's required inputs.
func (s *Schematic) HasInput(c commodity.Type) bool {
	_, ok := s.inputs[c.TypeID()]
	return ok
}

// InputTypeIDs returns the type ids of every required input.
func (s *Schematic) InputTypeIDs() []int {
	ids := make([]int, 0, len(s.inputs))
	for id := range s.inputs {
		ids = append(ids, id)
	}
	return ids
}
