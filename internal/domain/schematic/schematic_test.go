package schematic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/domain/commodity"
	"github.com/planetarysim/colonysim/internal/domain/schematic"
)

func TestNew_RejectsEmptyInputs(t *testing.T) {
	// Arrange
	output := commodity.MustNew(100, 1, "Output")

	// Act
	_, err := schematic.New(3600, output, 1, map[commodity.Type]int{})

	// Assert
	require.Error(t, err)
}

func TestNew_RejectsNonPositiveCycleTime(t *testing.T) {
	// Arrange
	output := commodity.MustNew(100, 1, "Output")
	input := commodity.MustNew(1, 1, "Input")

	// Act
	_, err := schematic.New(0, output, 1, map[commodity.Type]int{input: 1})

	// Assert
	require.Error(t, err)
}

func TestNew_Accessors(t *testing.T) {
	// Arrange
	output := commodity.MustNew(100, 1, "Output")
	waterInput := commodity.MustNew(2400, 0.38, "Water")
	oreInput := commodity.MustNew(2401, 0.3, "Ore")

	// Act
	s, err := schematic.New(3600, output, 20, map[commodity.Type]int{
		waterInput: 40,
		oreInput:   10,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3600.0, s.CycleTimeSeconds())
	assert.Equal(t, 20, s.OutputQuantity())
	assert.True(t, s.HasInput(waterInput))
	qty, ok := s.RequiredQuantityByID(2401)
	assert.True(t, ok)
	assert.Equal(t, 10, qty)
	assert.ElementsMatch(t, []int{2400, 2401}, s.InputTypeIDs())
}

func TestResolveBaseResources(t *testing.T) {
	// Arrange: target 100 needs 10 (base) and 20 (one level of recipe,
	// itself needing base resource 30).
	rows := map[int][]schematic.Row{
		100: {
			{OutputTypeID: 100, InputTypeID: 10, InputValue: 5},
			{OutputTypeID: 100, InputTypeID: 20, InputValue: 2},
		},
		20: {
			{OutputTypeID: 20, InputTypeID: 30, InputValue: 1},
		},
	}
	lookup := fakeLookup{rows: rows}
	names := fakeNames{names: map[int]string{10: "Base Ten", 30: "Base Thirty"}}

	// Act
	resources, err := schematic.ResolveBaseResources(context.Background(), 100, lookup, names)

	// Assert
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, 10, resources[0].TypeID)
	assert.Equal(t, "Base Ten", resources[0].Name)
	assert.Equal(t, 1, resources[0].Depth)
	assert.Equal(t, 30, resources[1].TypeID)
	assert.Equal(t, "Base Thirty", resources[1].Name)
	assert.Equal(t, 2, resources[1].Depth)
}

func TestResolveBaseResources_StaticDataMissingIsRecoverable(t *testing.T) {
	// Arrange: lookup errors on every call, so nothing below target is
	// ever discovered and target itself isn't reported as a base resource.
	lookup := fakeLookup{err: assert.AnError}

	// Act
	resources, err := schematic.ResolveBaseResources(context.Background(), 100, lookup, nil)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, resources)
}

type fakeLookup struct {
	rows map[int][]schematic.Row
	err  error
}

func (f fakeLookup) InputsForOutputs(ctx context.Context, outputTypeIDs []int) ([]schematic.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []schematic.Row
	for _, id := range outputTypeIDs {
		out = append(out, f.rows[id]...)
	}
	return out, nil
}

type fakeNames struct {
	names map[int]string
}

func (f fakeNames) NamesForTypes(ctx context.Context, typeIDs []int) (map[int]string, error) {
	out := make(map[int]string, len(typeIDs))
	for _, id := range typeIDs {
		out[id] = f.names[id]
	}
	return out, nil
}
