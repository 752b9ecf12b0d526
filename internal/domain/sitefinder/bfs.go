package sitefinder

import (
	"context"
	"sort"
)

// nearestNeighbourWithResource breadth-first searches outward from start
// along graph, up to maxJumps hops, for the first system (by increasing
// distance) whose planet counts include at least one of planetTypes.
// Systems within a layer are visited in ascending id order so ties are
// resolved deterministically (§4.10's determinism requirement applies here
// too, even though §4.14 doesn't name a tie-break explicitly).
func nearestNeighbourWithResource(ctx context.Context, graph AdjacencyGraph, catalog SystemCatalog, start int, planetTypes []int, maxJumps int) (jumps int, found bool, err error) {
	visited := map[int]bool{start: true}
	frontier := []int{start}

	for depth := 1; depth <= maxJumps; depth++ {
		var next []int
		for _, cur := range frontier {
			neighbours, nerr := graph.Neighbours(ctx, cur)
			if nerr != nil {
				return 0, false, nerr
			}
			for _, n := range neighbours {
				if visited[n] {
					continue
				}
				visited[n] = true
				next = append(next, n)
			}
		}
		sort.Ints(next)

		for _, n := range next {
			counts, cerr := catalog.PlanetCounts(ctx, n)
			if cerr != nil {
				return 0, false, cerr
			}
			if sumCounts(counts, planetTypes) > 0 {
				return depth, true, nil
			}
		}

		frontier = next
		if len(frontier) == 0 {
			break
		}
	}
	return 0, false, nil
}

func sumCounts(counts SystemPlanetCounts, planetTypes []int) int {
	sum := 0
	for _, pt := range planetTypes {
		sum += counts[pt]
	}
	return sum
}
