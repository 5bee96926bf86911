package types

import (
	"sort"
	"time"
)

// Strategy selects which planner builds the itinerary.
type Strategy string

const (
	StrategyHeuristic Strategy = "heuristic"
	StrategyGenetic   Strategy = "genetic"
)

// Preferences is the caller-supplied request, immutable for one planning call.
type Preferences struct {
	TargetVibes      []string  `json:"target_vibes"`
	BudgetLimit      float64   `json:"budget_limit"`
	ItineraryLength  int       `json:"itinerary_length"`
	TargetTypes      []string  `json:"target_types"`
	HiddenGem        bool      `json:"hidden_gem"`
	LocationFilter   string    `json:"location_filter,omitempty"`
	ExcludedVenueIDs []string  `json:"excluded_venue_ids,omitempty"`
	CurrentTime      time.Time `json:"current_datetime,omitempty"`
	// Randomness trades exploitation for exploration: 0 always picks the best
	// candidate, 1 picks freely from the top band.
	Randomness float64 `json:"randomness,omitempty"`
}

// ExcludedSet returns the excluded IDs as a lookup set.
func (p Preferences) ExcludedSet() map[string]struct{} {
	if len(p.ExcludedVenueIDs) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(p.ExcludedVenueIDs))
	for _, id := range p.ExcludedVenueIDs {
		set[id] = struct{}{}
	}
	return set
}

// PlanResult is the only shape that crosses the engine boundary. Internal
// failures are captured here, never raised.
type PlanResult struct {
	Success   bool    `json:"success"`
	Itinerary []Venue `json:"itinerary,omitempty"`
	Length    int     `json:"length"`
	Error     string  `json:"error,omitempty"`
}

// FailedPlan wraps an error message into a failure result.
func FailedPlan(msg string) PlanResult {
	return PlanResult{Success: false, Error: msg}
}

// TotalCost sums the cost of every stop.
func TotalCost(itinerary []Venue) float64 {
	var total float64
	for _, v := range itinerary {
		total += v.Cost
	}
	return total
}

// SortByDateSequence reorders stops into the natural date flow
// (activity -> meal -> drinks -> dessert). Pure reordering: the sort is stable
// and idempotent, it never adds or removes stops.
func SortByDateSequence(itinerary []Venue) []Venue {
	sort.SliceStable(itinerary, func(i, j int) bool {
		return itinerary[i].Stage() < itinerary[j].Stage()
	})
	return itinerary
}
