package schematic

import (
	"context"
	"sort"
)

// Row is one edge of the planetSchematics table: output_typeid is produced
// from input_typeid at the given input_value (quantity) per cycle.
type Row struct {
	OutputTypeID int
	InputTypeID  int
	InputValue   int
}

// Lookup is the port the resolver uses to expand a level of the recipe
// graph. Implementations query `SELECT input_typeid, input_value,
// output_typeid FROM planetSchematics WHERE output_typeid IN (...)`.
type Lookup interface {
	InputsForOutputs(ctx context.Context, outputTypeIDs []int) ([]Row, error)
}

// NameLookup resolves display names for a batch of base-resource type ids in
// one query, per §4.13 ("fetch names for all base resource ids in one
// query").
type NameLookup interface {
	NamesForTypes(ctx context.Context, typeIDs []int) (map[int]string, error)
}

// BaseResource is a P0 commodity reached while expanding a target product:
// it has no recipe of its own.
type BaseResource struct {
	TypeID int
	Name   string
	Depth  int
}

// ResolveBaseResources performs the breadth-first expansion of §4.13: from
// target, repeatedly ask Lookup for the inputs of the current level's
// outputs, track every type visited to avoid cycles, and classify any type
// with no recipe row (and which isn't the original target) as a base
// resource at its discovery depth. Names are fetched in a single batched
// call after the BFS completes.
//
// Per §7, a StaticDataMissing condition at any level simply yields no
// children for that output — the resolver never returns a partial error, it
// returns whatever base resources were found (empty if none).
func ResolveBaseResources(ctx context.Context, target int, lookup Lookup, names NameLookup) ([]BaseResource, error) {
	type discovery struct {
		typeID int
		depth  int
	}

	processed := map[int]bool{target: true}
	baseByID := make(map[int]int) // typeID -> depth (first depth wins)
	currentLevel := []int{target}
	depth := 0

	for len(currentLevel) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rows, err := lookup.InputsForOutputs(ctx, currentLevel)
		if err != nil {
			// StaticDataMissing: treat this level as having no children and stop descending.
			rows = nil
		}

		childrenByOutput := make(map[int][]int)
		for _, r := range rows {
			childrenByOutput[r.OutputTypeID] = append(childrenByOutput[r.OutputTypeID], r.InputTypeID)
		}

		var nextLevel []int
		nextDepth := depth + 1
		for _, outputID := range currentLevel {
			children, hasRecipe := childrenByOutput[outputID]
			if !hasRecipe || len(children) == 0 {
				if outputID != target {
					if _, seen := baseByID[outputID]; !seen {
						baseByID[outputID] = depth
					}
				}
				continue
			}
			for _, childID := range children {
				if processed[childID] {
					continue
				}
				processed[childID] = true
				nextLevel = append(nextLevel, childID)
			}
		}

		currentLevel = nextLevel
		depth = nextDepth
	}

	if len(baseByID) == 0 {
		return []BaseResource{}, nil
	}

	ids := make([]int, 0, len(baseByID))
	for id := range baseByID {
		ids = append(ids, id)
	}

	var nameByID map[int]string
	if names != nil {
		var err error
		nameByID, err = names.NamesForTypes(ctx, ids)
		if err != nil {
			nameByID = nil
		}
	}

	results := make([]BaseResource, 0, len(baseByID))
	for id, d := range baseByID {
		results = append(results, BaseResource{
			TypeID: id,
			Name:   nameByID[id],
			Depth:  d,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Depth != results[j].Depth {
			return results[i].Depth < results[j].Depth
		}
		return results[i].TypeID < results[j].TypeID
	})
	return results, nil
}
