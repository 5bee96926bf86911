package itinerary

import (
	"context"
	"fmt"
	"testing"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// benchmarkPool synthesizes a city-sized pool with a realistic mix of venue
// types, costs and ratings.
func benchmarkPool(n int) []types.Venue {
	templates := []struct {
		primary string
		all     string
		cost    float64
		vibes   string
	}{
		{"italian_restaurant", "italian_restaurant restaurant food", 45, "romantic,cozy"},
		{"thai_restaurant", "thai_restaurant restaurant food", 30, "casual"},
		{"bar", "bar night_club", 25, "energetic"},
		{"coffee_shop", "coffee_shop cafe", 8, "cozy"},
		{"park", "park point_of_interest", 0, ""},
		{"bakery", "bakery cafe food", 12, "cozy"},
		{"museum", "museum tourist_attraction", 15, ""},
	}

	pool := make([]types.Venue, n)
	for i := 0; i < n; i++ {
		tpl := templates[i%len(templates)]
		pool[i] = types.Venue{
			ID:           fmt.Sprintf("venue-%d", i),
			Name:         fmt.Sprintf("Venue %d", i),
			Latitude:     45.40 + float64(i%50)*0.001,
			Longitude:    -75.70 + float64(i%50)*0.001,
			Cost:         tpl.cost,
			Rating:       3.5 + float64(i%15)*0.1,
			ReviewsCount: 50 + i*7%900,
			PrimaryType:  tpl.primary,
			AllTypes:     tpl.all,
			Vibes:        tpl.vibes,
			Address:      "Ottawa",
		}
	}
	return pool
}

func benchmarkPrefs() types.Preferences {
	return types.Preferences{
		TargetVibes:     []string{"romantic"},
		TargetTypes:     []string{"italian"},
		BudgetLimit:     120,
		ItineraryLength: 3,
	}
}

func BenchmarkHeuristicSearch(b *testing.B) {
	cfg := DefaultScoringConfig()
	tax := NewTaxonomy()
	pool := benchmarkPool(200)
	tax.LearnFromPool(pool)
	prefs := benchmarkPrefs()
	rng := testRng(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runHeuristicSearch(pool, prefs, cfg, tax, rng)
	}
}

func BenchmarkGeneticAlgorithm(b *testing.B) {
	cfg := DefaultScoringConfig()
	cfg.PopulationSize = 50
	cfg.Generations = 20
	tax := NewTaxonomy()
	pool := benchmarkPool(200)
	tax.LearnFromPool(pool)
	prefs := benchmarkPrefs()
	rng := testRng(1)
	logger := testLogger()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runGeneticAlgorithm(ctx, pool, prefs, cfg, tax, rng, logger)
	}
}

func BenchmarkCalculateFitness(b *testing.B) {
	cfg := DefaultScoringConfig()
	tax := NewTaxonomy()
	pool := benchmarkPool(200)
	tax.LearnFromPool(pool)
	prefs := benchmarkPrefs()
	dc := newDistanceCache()
	itin := pool[:3]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculateFitness(itin, prefs, cfg, tax, dc)
	}
}

func BenchmarkScoreVenue(b *testing.B) {
	cfg := DefaultScoringConfig()
	tax := NewTaxonomy()
	pool := benchmarkPool(200)
	tax.LearnFromPool(pool)
	prefs := benchmarkPrefs()
	rng := testRng(1)
	st := scoreState{visitedTypes: map[string]struct{}{}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scoreVenue(pool[i%len(pool)], st, prefs, cfg, tax, prefs.TargetTypes, rng)
	}
}
