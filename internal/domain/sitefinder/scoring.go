package sitefinder

import (
	"context"
	"sort"
)

// FindSites ranks candidates by their ability to produce every resource in
// requiredResources, locally or within maxJumps, per §4.14. Candidates
// missing even one resource (locally and within the jump budget) are
// dropped. Results are sorted by score descending, tie-broken by system id
// ascending, and truncated to topN.
func FindSites(ctx context.Context, candidates []int, requiredResources []int, maxJumps int, topN int, catalog SystemCatalog, resourceTypes ResourcePlanetTypes, graph AdjacencyGraph) ([]SiteResult, error) {
	planetTypesByResource := make(map[int][]int, len(requiredResources))
	for _, r := range requiredResources {
		types, err := resourceTypes.PlanetTypesForResource(ctx, r)
		if err != nil {
			return nil, err
		}
		planetTypesByResource[r] = types
	}

	var results []SiteResult
	for _, s := range candidates {
		available := make(map[int]int)
		neighbourJumps := make(map[int]int)
		localSum := 0
		unsatisfied := false

		for _, r := range requiredResources {
			counts, err := catalog.PlanetCounts(ctx, s)
			if err != nil {
				return nil, err
			}
			sum := sumCounts(counts, planetTypesByResource[r])
			if sum > 0 {
				available[r] = sum
				localSum += sum
				continue
			}

			jumps, found, err := nearestNeighbourWithResource(ctx, graph, catalog, s, planetTypesByResource[r], maxJumps)
			if err != nil {
				return nil, err
			}
			if !found {
				unsatisfied = true
				break
			}
			neighbourJumps[r] = jumps
		}

		if unsatisfied {
			continue
		}

		results = append(results, SiteResult{
			SystemID:       s,
			Score:          score(available, neighbourJumps, localSum),
			Available:      available,
			NeighbourJumps: neighbourJumps,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].SystemID < results[j].SystemID
	})

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}

func score(available map[int]int, neighbourJumps map[int]int, localSum int) float64 {
	if localSum == 0 {
		return 1.0
	}

	n := len(available)
	balancedCount := 0
	for _, count := range available {
		if count >= 2 {
			balancedCount++
		}
	}

	base := 10 * float64(localSum)
	balanceRatio := 0.0
	if n > 0 {
		balanceRatio = 100 * float64(balancedCount) / float64(n)
	}

	neighbourContribution := 0.0
	for _, jumps := range neighbourJumps {
		neighbourContribution += 5 - 5*float64(jumps)
	}

	total := base + balanceRatio + neighbourContribution
	if balancedCount == n && n > 0 {
		total += 50
	}
	if len(neighbourJumps) == 0 {
		total += 200
	} else {
		total += 50
	}
	return total
}
