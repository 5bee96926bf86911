package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

func TestLearnFromPoolStatistics(t *testing.T) {
	cfg := DefaultScoringConfig()

	pool := []types.Venue{
		{ID: "a", Rating: 4.0, ReviewsCount: 100, Cost: 20},
		{ID: "b", Rating: 5.0, ReviewsCount: 200, Cost: 40},
		{ID: "c", Rating: 3.0, ReviewsCount: 300, Cost: 60},
	}
	cfg.LearnFromPool(pool, testLogger())

	assert.InDelta(t, 4.0, cfg.BayesianAverageConstant, 0.001, "prior is the mean rating")
	assert.Equal(t, 400, cfg.HiddenGemMaxReviews, "ceiling is twice the median review count")
	assert.Equal(t, 50.0, cfg.DefaultBudget, "default budget is the 75th cost percentile")
}

func TestLearnFromPoolEmptyKeepsDefaults(t *testing.T) {
	cfg := DefaultScoringConfig()
	before := cfg

	cfg.LearnFromPool(nil, testLogger())
	assert.Equal(t, before, cfg)
}

func TestLearnFromPoolIgnoresUnratedVenues(t *testing.T) {
	cfg := DefaultScoringConfig()

	pool := []types.Venue{
		{ID: "a", Rating: 4.0, ReviewsCount: 100, Cost: 20},
		{ID: "b", Rating: 0, ReviewsCount: 0, Cost: 0},
	}
	cfg.LearnFromPool(pool, testLogger())

	assert.InDelta(t, 4.0, cfg.BayesianAverageConstant, 0.001)
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40}

	assert.Equal(t, 25.0, percentile(values, 0.5))
	assert.Equal(t, 10.0, percentile(values, 0))
	assert.Equal(t, 40.0, percentile(values, 1))
	assert.Zero(t, percentile(nil, 0.5))

	// input must not be reordered
	assert.Equal(t, 20.0, percentile([]float64{30, 10, 20}, 0.5))
}

func TestDefaultScoringConfigSanity(t *testing.T) {
	cfg := DefaultScoringConfig()

	assert.Greater(t, cfg.PopulationSize, cfg.ElitismCount)
	assert.Greater(t, cfg.WrongCuisinePenalty, cfg.TypeMatchBonus,
		"the wrong cuisine must hurt more than a match helps")
	assert.Positive(t, cfg.DefaultBudget)
	assert.Positive(t, cfg.DefaultItineraryLength)
	assert.NotEmpty(t, cfg.DefaultArea)
}
