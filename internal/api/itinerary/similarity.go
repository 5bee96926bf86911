package itinerary

import (
	"strings"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// Similarity weights: a direct type match outweighs a related term, which
// outweighs a vibe match.
const (
	directMatchScore  = 2.0
	relatedMatchScore = 1.5
	vibeMatchScore    = 0.5
)

// applySimilarityScores fills SimilarityScore on every venue in the slice
// according to how well it matches the requested types and vibes.
func applySimilarityScores(pool []types.Venue, targetTypes, targetVibes []string, tax *Taxonomy) {
	for i := range pool {
		search := pool[i].SearchText()
		vibes := strings.ToLower(pool[i].Vibes)

		var score float64
		for _, t := range targetTypes {
			lower := strings.ToLower(t)
			if strings.Contains(search, lower) {
				score += directMatchScore
			}
			for _, rel := range tax.Related(lower) {
				if strings.Contains(search, rel) {
					score += relatedMatchScore
				}
			}
		}
		for _, v := range targetVibes {
			if strings.Contains(vibes, strings.ToLower(v)) {
				score += vibeMatchScore
			}
		}
		pool[i].SimilarityScore = score
	}
}

// filterByLocation keeps venues whose address mentions the requested area.
// A filter equal to the default area is a no-op, and a filter matching nothing
// falls back to the whole pool rather than returning an empty plan.
func filterByLocation(pool []types.Venue, filter, defaultArea string) []types.Venue {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" || filter == strings.ToLower(defaultArea) {
		return pool
	}

	matched := make([]types.Venue, 0, len(pool))
	for _, v := range pool {
		addr := strings.ToLower(v.Address + " " + v.ShortAddress)
		if strings.Contains(addr, filter) {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return pool
	}
	return matched
}

// filterExcluded drops venues the caller has rejected before.
func filterExcluded(pool []types.Venue, excluded map[string]struct{}) []types.Venue {
	if len(excluded) == 0 {
		return pool
	}
	kept := make([]types.Venue, 0, len(pool))
	for _, v := range pool {
		if _, skip := excluded[v.ID]; !skip {
			kept = append(kept, v)
		}
	}
	return kept
}
