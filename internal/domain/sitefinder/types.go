// Package sitefinder ranks candidate star systems by their ability to
// locally — or within a bounded number of jumps — produce every base
// resource a target product requires (§4.14).
package sitefinder

// Planet type ids, as exposed by the universe table's per-system planet
// count columns (§6.1).
const (
	PlanetTypeTemperate = 11
	PlanetTypeIce       = 12
	PlanetTypeGas       = 13
	PlanetTypeOceanic   = 2014
	PlanetTypeLava      = 2015
	PlanetTypeBarren    = 2016
	PlanetTypeStorm     = 2017
	PlanetTypePlasma    = 2063
)

// SystemPlanetCounts is the number of planets of each planet type present
// in one solar system.
type SystemPlanetCounts map[int]int

// SiteResult is one ranked candidate system.
type SiteResult struct {
	SystemID int
	Score    float64
	// Available is the per-resource count of planets producing it locally
	// within SystemID; resources satisfied only via a neighbour are absent
	// from (or zero in) this map.
	Available map[int]int
	// NeighbourJumps is the distance to the nearest neighbour system that
	// satisfies a resource not available locally.
	NeighbourJumps map[int]int
}
