package sitefinder

import "context"

// SystemCatalog exposes per-system planet-type counts, backed by the
// universe table (§6.1).
type SystemCatalog interface {
	PlanetCounts(ctx context.Context, systemID int) (SystemPlanetCounts, error)
}

// ResourcePlanetTypes maps a base-resource type id to the set of planet
// type ids capable of producing it, backed by planetResourceHarvest joined
// with typeAttributes attribute 1632 (§6.1).
type ResourcePlanetTypes interface {
	PlanetTypesForResource(ctx context.Context, resourceTypeID int) ([]int, error)
}

// AdjacencyGraph exposes the precomputed stellar adjacency graph (§6.2).
type AdjacencyGraph interface {
	Neighbours(ctx context.Context, systemID int) ([]int, error)
}
