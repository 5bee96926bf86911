package itinerary

import (
	"log/slog"
	"math"
	"sort"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// ScoringConfig holds every weight and hyperparameter used by the scorer and
// both planners. Values start at the tuned defaults; a subset is overwritten
// once per process by LearnFromPool. Treat a learned config as immutable.
type ScoringConfig struct {
	// Vibe matching
	VibeMatchBonus   float64 `mapstructure:"vibeMatchBonus"`
	NeutralVibeBonus float64 `mapstructure:"neutralVibeBonus"`

	// Rating / review scoring
	BayesianAverageConstant float64 `mapstructure:"bayesianAverageConstant"` // mean rating across the pool, learned
	BayesianMinReviews      float64 `mapstructure:"bayesianMinReviews"`      // reviews needed to trust a rating
	RatingMultiplier        float64 `mapstructure:"ratingMultiplier"`

	// Hidden gems
	HiddenGemMinReviews        int     `mapstructure:"hiddenGemMinReviews"`
	HiddenGemMaxReviews        int     `mapstructure:"hiddenGemMaxReviews"` // learned: 2x median review count
	HiddenGemBonus             float64 `mapstructure:"hiddenGemBonus"`
	HiddenGemPopularityPenalty float64 `mapstructure:"hiddenGemPopularityPenalty"`
	HiddenGemPopularityCutoff  int     `mapstructure:"hiddenGemPopularityCutoff"`
	HiddenGemRatingMultiplier  float64 `mapstructure:"hiddenGemRatingMultiplier"`

	// Distance
	DistancePenaltyMultiplier float64 `mapstructure:"distancePenaltyMultiplier"`
	DistanceExponent          float64 `mapstructure:"distanceExponent"`

	// Type matching
	TypeMatchBonus          float64 `mapstructure:"typeMatchBonus"`
	WrongCuisinePenalty     float64 `mapstructure:"wrongCuisinePenalty"`
	ComplementaryVenueBonus float64 `mapstructure:"complementaryVenueBonus"`
	UnknownSlotPenalty      float64 `mapstructure:"unknownSlotPenalty"`
	RepeatedTypePenalty     float64 `mapstructure:"repeatedTypePenalty"`
	NewCategoryBonus        float64 `mapstructure:"newCategoryBonus"`

	// Exploration
	RandomnessMultiplier float64 `mapstructure:"randomnessMultiplier"`

	// Vibe-feature cross bonuses
	RomanticReservableBonus float64 `mapstructure:"romanticReservableBonus"`
	RomanticKidsPenalty     float64 `mapstructure:"romanticKidsPenalty"`
	OutdoorSeatingBonus     float64 `mapstructure:"outdoorSeatingBonus"`
	FamilyKidsBonus         float64 `mapstructure:"familyKidsBonus"`
	EnergeticLiveMusicBonus float64 `mapstructure:"energeticLiveMusicBonus"`
	GroupFriendlyBonus      float64 `mapstructure:"groupFriendlyBonus"`

	// Genetic algorithm hyperparameters
	PopulationSize  int     `mapstructure:"populationSize"`
	Generations     int     `mapstructure:"generations"`
	MutationRate    float64 `mapstructure:"mutationRate"`
	CrossoverRate   float64 `mapstructure:"crossoverRate"`
	ElitismCount    int     `mapstructure:"elitismCount"`
	TournamentSize  int     `mapstructure:"tournamentSize"`
	StagnationLimit int     `mapstructure:"stagnationLimit"`

	// Whole-itinerary fitness
	GAInitialScore            float64 `mapstructure:"gaInitialScore"`
	GATypeCoverageBonus       float64 `mapstructure:"gaTypeCoverageBonus"`
	GAFullTypeCoverageBonus   float64 `mapstructure:"gaFullTypeCoverageBonus"`
	GAMissingTypePenalty      float64 `mapstructure:"gaMissingTypePenalty"`
	GADiversityBonus          float64 `mapstructure:"gaDiversityBonus"`
	GAGoodFlowBonus           float64 `mapstructure:"gaGoodFlowBonus"`
	GARatingMultiplier        float64 `mapstructure:"gaRatingMultiplier"`
	GADistancePenalty         float64 `mapstructure:"gaDistancePenalty"`
	GAVibeMatchBonus          float64 `mapstructure:"gaVibeMatchBonus"`
	GALocationMismatchPenalty float64 `mapstructure:"gaLocationMismatchPenalty"`

	// Memetic local search bounds
	LocalSearchMaxPasses  int `mapstructure:"localSearchMaxPasses"`
	LocalSearchCandidates int `mapstructure:"localSearchCandidates"`

	// Defaults applied when the caller leaves preferences unset
	DefaultBudget          float64 `mapstructure:"defaultBudget"` // learned: 75th cost percentile
	DefaultItineraryLength int     `mapstructure:"defaultItineraryLength"`
	DefaultRandomness      float64 `mapstructure:"defaultRandomness"`
	DefaultArea            string  `mapstructure:"defaultArea"` // location filter equal to this is a no-op
}

// DefaultScoringConfig returns the tuned defaults.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		VibeMatchBonus:   25,
		NeutralVibeBonus: 5,

		BayesianAverageConstant: 3.5,
		BayesianMinReviews:      10,
		RatingMultiplier:        5,

		HiddenGemMinReviews:        10,
		HiddenGemMaxReviews:        300,
		HiddenGemBonus:             30,
		HiddenGemPopularityPenalty: 20,
		HiddenGemPopularityCutoff:  1000,
		HiddenGemRatingMultiplier:  5,

		DistancePenaltyMultiplier: 3,
		DistanceExponent:          1.5,

		TypeMatchBonus:          500,
		WrongCuisinePenalty:     800,
		ComplementaryVenueBonus: 20,
		UnknownSlotPenalty:      50,
		RepeatedTypePenalty:     100,
		NewCategoryBonus:        15,

		RandomnessMultiplier: 3.0,

		RomanticReservableBonus: 25,
		RomanticKidsPenalty:     30,
		OutdoorSeatingBonus:     40,
		FamilyKidsBonus:         50,
		EnergeticLiveMusicBonus: 40,
		GroupFriendlyBonus:      40,

		PopulationSize:  100,
		Generations:     50,
		MutationRate:    0.2,
		CrossoverRate:   0.8,
		ElitismCount:    5,
		TournamentSize:  3,
		StagnationLimit: 20,

		GAInitialScore:            1000,
		GATypeCoverageBonus:       400,
		GAFullTypeCoverageBonus:   500,
		GAMissingTypePenalty:      300,
		GADiversityBonus:          50,
		GAGoodFlowBonus:           100,
		GARatingMultiplier:        10,
		GADistancePenalty:         5,
		GAVibeMatchBonus:          30,
		GALocationMismatchPenalty: 50,

		LocalSearchMaxPasses:  10,
		LocalSearchCandidates: 20,

		DefaultBudget:          150,
		DefaultItineraryLength: 3,
		DefaultRandomness:      0.2,
		DefaultArea:            "ottawa",
	}
}

// LearnFromPool derives the data-dependent weights from aggregate statistics
// of the venue pool: the Bayesian prior from the mean rating, the hidden-gem
// review ceiling from the median review count, the default budget from the
// 75th cost percentile. An empty or unusable pool leaves the receiver's
// current values untouched and logs a warning; it never fails the call.
func (c *ScoringConfig) LearnFromPool(pool []types.Venue, logger *slog.Logger) {
	if len(pool) == 0 {
		logger.Warn("cannot learn scoring parameters from an empty venue pool, keeping defaults")
		return
	}

	var ratingSum float64
	var rated int
	reviews := make([]float64, 0, len(pool))
	costs := make([]float64, 0, len(pool))

	for _, v := range pool {
		if v.Rating > 0 {
			ratingSum += v.Rating
			rated++
		}
		reviews = append(reviews, float64(v.ReviewsCount))
		costs = append(costs, v.Cost)
	}

	if rated > 0 {
		c.BayesianAverageConstant = math.Round(ratingSum/float64(rated)*100) / 100
		logger.Info("learned average rating", slog.Float64("bayesian_constant", c.BayesianAverageConstant))
	}

	if median := percentile(reviews, 0.5); median > 0 {
		c.HiddenGemMaxReviews = int(median * 2)
		logger.Info("learned hidden gem review ceiling", slog.Int("max_reviews", c.HiddenGemMaxReviews))
	}

	if p75 := percentile(costs, 0.75); p75 > 0 {
		c.DefaultBudget = math.Trunc(p75)
		logger.Info("learned default budget", slog.Float64("default_budget", c.DefaultBudget))
	}
}

// percentile returns the linearly interpolated p-quantile of values.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}
