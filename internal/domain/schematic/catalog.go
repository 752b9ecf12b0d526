package schematic

import "context"

// Catalog resolves a schematic's full recipe — output commodity, output
// quantity, cycle time, and every input line — keyed by the schematic's
// output type id, the same id space planetSchematics.output_typeid uses as
// its primary key (§6.1). Unlike Lookup, which only walks the recipe graph
// one input edge at a time for ResolveBaseResources, Catalog returns the
// complete Schematic value object a running Factory pin needs.
type Catalog interface {
	SchematicForOutput(ctx context.Context, outputTypeID int) (*Schematic, error)
}
