package persistence

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/planetarysim/colonysim/internal/domain/commodity"
	"github.com/planetarysim/colonysim/internal/domain/schematic"
	"github.com/planetarysim/colonysim/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSchematicRepository implements schematic.Lookup over the
// planetSchematics table (§4.13, §6.1).
type GormSchematicRepository struct {
	db *gorm.DB
}

// NewGormSchematicRepository builds a GormSchematicRepository.
func NewGormSchematicRepository(db *gorm.DB) *GormSchematicRepository {
	return &GormSchematicRepository{db: db}
}

// InputsForOutputs runs `SELECT input_typeid, input_value, output_typeid
// FROM planetSchematics WHERE output_typeid IN (...)`, splitting each row's
// CSV input columns into one schematic.Row per input type. A row whose CSV
// columns don't line up (arity mismatch) is a MalformedSchematic per §7: it
// is skipped rather than failing the whole query.
func (r *GormSchematicRepository) InputsForOutputs(ctx context.Context, outputTypeIDs []int) ([]schematic.Row, error) {
	if len(outputTypeIDs) == 0 {
		return nil, nil
	}

	var rows []PlanetSchematicModel
	if err := r.db.WithContext(ctx).
		Where("output_typeid IN ?", outputTypeIDs).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query planetSchematics: %w", err)
	}

	var out []schematic.Row
	for _, row := range rows {
		inputTypes := splitCSVInts(row.InputTypeID)
		inputValues := splitCSVInts(row.InputValue)
		if len(inputTypes) == 0 || len(inputTypes) != len(inputValues) {
			// MalformedSchematic (§7): arity mismatch, skip with no error.
			continue
		}
		for i, typeID := range inputTypes {
			out = append(out, schematic.Row{
				OutputTypeID: row.OutputTypeID,
				InputTypeID:  typeID,
				InputValue:   inputValues[i],
			})
		}
	}
	return out, nil
}

// SchematicForOutput implements schematic.Catalog: it loads the single
// planetSchematics row keyed by outputTypeID, splits its CSV input columns,
// and resolves every commodity (output and inputs) against the `types`
// table for volume/name before constructing the full schematic.Schematic
// (§4.4's factory state needs the complete recipe, not just the resolver's
// one-edge-at-a-time Row). A malformed row (CSV arity mismatch, non-positive
// cycle time) is a MalformedSchematicError per §7.
func (r *GormSchematicRepository) SchematicForOutput(ctx context.Context, outputTypeID int) (*schematic.Schematic, error) {
	var row PlanetSchematicModel
	err := r.db.WithContext(ctx).Where("output_typeid = ?", outputTypeID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("schematic for output %d: %w", outputTypeID, gorm.ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query planetSchematics: %w", err)
	}

	inputTypes := splitCSVInts(row.InputTypeID)
	inputValues := splitCSVInts(row.InputValue)
	if len(inputTypes) == 0 || len(inputTypes) != len(inputValues) {
		return nil, shared.NewMalformedSchematicError(outputTypeID, "input column arity mismatch")
	}

	types := NewGormTypeRepository(r.db)

	outputCommodity, err := resolveCommodity(ctx, types, outputTypeID)
	if err != nil {
		return nil, err
	}

	inputs := make(map[commodity.Type]int, len(inputTypes))
	for i, typeID := range inputTypes {
		inputCommodity, err := resolveCommodity(ctx, types, typeID)
		if err != nil {
			return nil, err
		}
		inputs[inputCommodity] = inputValues[i]
	}

	s, err := schematic.New(float64(row.CycleTime), outputCommodity, row.OutputValue, inputs)
	if err != nil {
		return nil, shared.NewMalformedSchematicError(outputTypeID, err.Error())
	}
	return s, nil
}

func resolveCommodity(ctx context.Context, types *GormTypeRepository, typeID int) (commodity.Type, error) {
	volume, _, err := types.Volume(ctx, typeID)
	if err != nil {
		return commodity.Type{}, fmt.Errorf("query types: %w", err)
	}
	names, err := types.NamesForTypes(ctx, []int{typeID})
	if err != nil {
		return commodity.Type{}, fmt.Errorf("query types: %w", err)
	}
	c, err := commodity.New(typeID, volume, names[typeID])
	if err != nil {
		return commodity.Type{}, fmt.Errorf("commodity %d: %w", typeID, err)
	}
	return c, nil
}

func splitCSVInts(csv string) []int {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil // malformed; caller treats as arity mismatch
		}
		out = append(out, v)
	}
	return out
}

// GormTypeRepository implements schematic.NameLookup (and the commodity
// volume/name lookups the adjacent adapters need) over the `types` table.
type GormTypeRepository struct {
	db *gorm.DB
}

// NewGormTypeRepository builds a GormTypeRepository.
func NewGormTypeRepository(db *gorm.DB) *GormTypeRepository {
	return &GormTypeRepository{db: db}
}

// NamesForTypes fetches display names for a batch of type ids in one query,
// per §4.13's "fetch names for all base resource ids in one query".
func (r *GormTypeRepository) NamesForTypes(ctx context.Context, typeIDs []int) (map[int]string, error) {
	if len(typeIDs) == 0 {
		return map[int]string{}, nil
	}

	var rows []TypeModel
	if err := r.db.WithContext(ctx).
		Where("type_id IN ?", typeIDs).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query types: %w", err)
	}

	names := make(map[int]string, len(rows))
	for _, row := range rows {
		names[row.TypeID] = row.Name
	}
	return names, nil
}

// Volume returns a commodity type's per-unit volume, or (0, false) if the
// type isn't known in the static catalog (a StaticDataMissing condition per
// §7 — the caller clamps to zero volume rather than failing).
func (r *GormTypeRepository) Volume(ctx context.Context, typeID int) (float64, bool, error) {
	var row TypeModel
	err := r.db.WithContext(ctx).Where("type_id = ?", typeID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query types: %w", err)
	}
	return row.Volume, true, nil
}
