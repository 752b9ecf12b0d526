package sitefinder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/domain/sitefinder"
)

type fakeCatalog struct {
	counts map[int]sitefinder.SystemPlanetCounts
}

func (f fakeCatalog) PlanetCounts(ctx context.Context, systemID int) (sitefinder.SystemPlanetCounts, error) {
	if c, ok := f.counts[systemID]; ok {
		return c, nil
	}
	return sitefinder.SystemPlanetCounts{}, nil
}

type fakeResourceTypes struct {
	byResource map[int][]int
}

func (f fakeResourceTypes) PlanetTypesForResource(ctx context.Context, resourceTypeID int) ([]int, error) {
	return f.byResource[resourceTypeID], nil
}

type fakeGraph struct {
	edges map[int][]int
}

func (f fakeGraph) Neighbours(ctx context.Context, systemID int) ([]int, error) {
	return f.edges[systemID], nil
}

func TestFindSites_DropsCandidateMissingResource(t *testing.T) {
	// Arrange: system 1 produces resource 100 but not 200, and has no
	// neighbours at all.
	catalog := fakeCatalog{counts: map[int]sitefinder.SystemPlanetCounts{
		1: {sitefinder.PlanetTypeTemperate: 3},
	}}
	resources := fakeResourceTypes{byResource: map[int][]int{
		100: {sitefinder.PlanetTypeTemperate},
		200: {sitefinder.PlanetTypeIce},
	}}
	graph := fakeGraph{}

	// Act
	results, err := sitefinder.FindSites(context.Background(), []int{1}, []int{100, 200}, 2, 10, catalog, resources, graph)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindSites_AllLocalScoresHigherThanNeighbourSourced(t *testing.T) {
	// Arrange: system 1 produces both resources locally with >=2 planets
	// each; system 2 only has resource 100 locally and must reach a
	// neighbour (system 3) for resource 200.
	catalog := fakeCatalog{counts: map[int]sitefinder.SystemPlanetCounts{
		1: {sitefinder.PlanetTypeTemperate: 3, sitefinder.PlanetTypeIce: 3},
		2: {sitefinder.PlanetTypeTemperate: 3},
		3: {sitefinder.PlanetTypeIce: 2},
	}}
	resources := fakeResourceTypes{byResource: map[int][]int{
		100: {sitefinder.PlanetTypeTemperate},
		200: {sitefinder.PlanetTypeIce},
	}}
	graph := fakeGraph{edges: map[int][]int{2: {3}, 3: {2}}}

	// Act
	results, err := sitefinder.FindSites(context.Background(), []int{1, 2}, []int{100, 200}, 2, 10, catalog, resources, graph)

	// Assert
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].SystemID)
	assert.Equal(t, 2, results[1].SystemID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestFindSites_RespectsTopN(t *testing.T) {
	// Arrange
	catalog := fakeCatalog{counts: map[int]sitefinder.SystemPlanetCounts{
		1: {sitefinder.PlanetTypeTemperate: 5},
		2: {sitefinder.PlanetTypeTemperate: 3},
		3: {sitefinder.PlanetTypeTemperate: 1},
	}}
	resources := fakeResourceTypes{byResource: map[int][]int{
		100: {sitefinder.PlanetTypeTemperate},
	}}
	graph := fakeGraph{}

	// Act
	results, err := sitefinder.FindSites(context.Background(), []int{1, 2, 3}, []int{100}, 1, 2, catalog, resources, graph)

	// Assert
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 1, results[0].SystemID)
}
