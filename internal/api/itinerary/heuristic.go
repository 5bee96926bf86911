package itinerary

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

type scoredVenue struct {
	score float64
	index int // position in the working pool
}

// runHeuristicSearch builds an itinerary greedily: at each step it scores
// every remaining venue against the current state and takes the best one, or
// a random pick from the top band when exploration is requested. The plan may
// come back shorter than asked for when the pool runs dry; that is expected.
func runHeuristicSearch(pool []types.Venue, prefs types.Preferences, cfg ScoringConfig,
	tax *Taxonomy, rng *rand.Rand) []types.Venue {

	working := make([]types.Venue, len(pool))
	copy(working, pool)

	working = filterExcluded(working, prefs.ExcludedSet())
	applySimilarityScores(working, prefs.TargetTypes, prefs.TargetVibes, tax)
	working = filterByLocation(working, prefs.LocationFilter, cfg.DefaultArea)

	st := scoreState{visitedTypes: make(map[string]struct{})}
	if !prefs.CurrentTime.IsZero() {
		st.hour = prefs.CurrentTime.Hour()
		st.hasHour = true
	}

	neededTypes := append([]string(nil), prefs.TargetTypes...)
	visited := make(map[string]struct{})
	plan := make([]types.Venue, 0, prefs.ItineraryLength)

	for step := 0; step < prefs.ItineraryLength; step++ {
		st.stopIndex = step

		candidates := make([]scoredVenue, 0, len(working))
		for i := range working {
			if _, taken := visited[working[i].ID]; taken {
				continue
			}
			score := scoreVenue(working[i], st, prefs, cfg, tax, neededTypes, rng)
			if score > rejectedScore {
				candidates = append(candidates, scoredVenue{score: score, index: i})
			}
		}
		if len(candidates) == 0 {
			break // nothing affordable left; a short plan beats no plan
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})

		pick := candidates[0]
		if prefs.Randomness > 0 && len(candidates) > 1 && rng.Float64() < prefs.Randomness {
			// explore: sample from a band that widens with randomness
			topN := int(float64(len(candidates)) * prefs.Randomness * 0.5)
			if topN < 2 {
				topN = 2
			}
			if topN > len(candidates) {
				topN = len(candidates)
			}
			pick = candidates[rng.Intn(topN)]
		}

		chosen := working[pick.index]
		chosen.SelectionReason = selectionReason(chosen, prefs, tax, neededTypes)

		plan = append(plan, chosen)
		visited[chosen.ID] = struct{}{}
		st.runningCost += chosen.Cost
		st.lastLocation = &plan[len(plan)-1]

		venueType := strings.ToLower(chosen.PrimaryType)
		if venueType != "" {
			st.visitedTypes[venueType] = struct{}{}
		}

		// one satisfied request per stop: asking for two bars keeps "bar" alive
		if matched, ok := tax.MatchAny(chosen, neededTypes); ok {
			neededTypes = removeFirst(neededTypes, matched)
		}
	}

	return types.SortByDateSequence(plan)
}

func removeFirst(items []string, target string) []string {
	for i, item := range items {
		if item == target {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}
