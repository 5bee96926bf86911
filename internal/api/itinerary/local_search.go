package itinerary

import (
	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// localSearch hill-climbs the best individual out of the evolutionary loop,
// turning the GA into a memetic algorithm. Each pass tries to swap every stop
// for a high-similarity candidate not yet in the plan and keeps only strict
// improvements; passes are bounded so refinement stays cheap.
func localSearch(ind individual, pool []types.Venue, prefs types.Preferences,
	cfg ScoringConfig, tax *Taxonomy, dc *distanceCache) individual {

	if len(ind) == 0 {
		return ind
	}

	current := calculateFitness(ind, prefs, cfg, tax, dc)
	currentIDs := ind.idSet()

	improved := true
	for pass := 0; improved && pass < cfg.LocalSearchMaxPasses; pass++ {
		improved = false

		for i := range ind {
			// pool is similarity-sorted, so the head holds the best swaps
			candidates := venuesNotIn(pool, currentIDs)
			if len(candidates) > cfg.LocalSearchCandidates {
				candidates = candidates[:cfg.LocalSearchCandidates]
			}

			for _, candidate := range candidates {
				old := ind[i]
				ind[i] = candidate

				if next := calculateFitness(ind, prefs, cfg, tax, dc); next > current {
					current = next
					delete(currentIDs, old.ID)
					currentIDs[candidate.ID] = struct{}{}
					improved = true
					break
				}
				ind[i] = old
			}
		}
	}

	return ind
}
