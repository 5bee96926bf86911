package evaluation

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/FACorreiaa/go-date-itinerary/internal/api/itinerary"
	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// Scenario is one evaluation query: a preference set plus a description.
type Scenario struct {
	Description string
	Vibes       []string
	Types       []string
	Budget      float64
	Stops       int
}

// DefaultScenarios are the standing validation queries used to compare
// planners across vibes, cuisines and budgets.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Description: "Romantic Italian dinner", Vibes: []string{"romantic"}, Types: []string{"italian"}, Budget: 100, Stops: 3},
		{Description: "Night out at bars", Vibes: []string{"energetic"}, Types: []string{"bar"}, Budget: 80, Stops: 3},
		{Description: "Cozy coffee date", Vibes: []string{"cozy"}, Types: []string{"coffee"}, Budget: 50, Stops: 2},
		{Description: "Fancy French dinner", Vibes: []string{"fancy"}, Types: []string{"french"}, Budget: 150, Stops: 3},
		{Description: "Casual pizza night", Vibes: []string{"casual"}, Types: []string{"pizza"}, Budget: 40, Stops: 2},
		{Description: "Hipster cafe crawl", Vibes: []string{"hipster"}, Types: []string{"cafe"}, Budget: 60, Stops: 3},
		{Description: "Family dinner outing", Vibes: []string{"family"}, Types: []string{"restaurant"}, Budget: 120, Stops: 3},
		{Description: "Romantic wine evening", Vibes: []string{"romantic", "cozy"}, Types: []string{"wine"}, Budget: 100, Stops: 2},
		{Description: "Pub crawl", Vibes: []string{"energetic"}, Types: []string{"pub"}, Budget: 70, Stops: 3},
		{Description: "Sushi foodie date", Vibes: []string{"foodie"}, Types: []string{"sushi"}, Budget: 90, Stops: 2},
		{Description: "Casual brunch", Vibes: []string{"casual"}, Types: []string{"brunch"}, Budget: 50, Stops: 2},
		{Description: "Romantic steakhouse", Vibes: []string{"romantic"}, Types: []string{"steakhouse"}, Budget: 130, Stops: 2},
		{Description: "Cozy bakery visit", Vibes: []string{"cozy"}, Types: []string{"bakery"}, Budget: 30, Stops: 2},
		{Description: "Fun Mexican night", Vibes: []string{"energetic", "casual"}, Types: []string{"mexican"}, Budget: 60, Stops: 3},
		{Description: "Hipster cocktail bars", Vibes: []string{"hipster"}, Types: []string{"cocktail"}, Budget: 80, Stops: 2},
	}
}

// PlanMetrics are the automated quality measures for one plan.
type PlanMetrics struct {
	BudgetOK      bool
	TotalCost     float64
	DiversityPct  float64 // unique primary types / stops
	VibeMatchPct  float64 // stops matching at least one requested vibe
	AverageRating float64
	Fitness       float64 // the genetic planner's own fitness score
}

// ComputePlanMetrics measures a plan with the same fitness function the
// genetic planner optimizes, plus a few direct ratios.
func ComputePlanMetrics(plan []types.Venue, budget float64, vibes, targetTypes []string,
	cfg itinerary.ScoringConfig, tax *itinerary.Taxonomy) PlanMetrics {

	if len(plan) == 0 {
		return PlanMetrics{}
	}

	prefs := types.Preferences{
		TargetVibes: vibes,
		TargetTypes: targetTypes,
		BudgetLimit: budget,
	}

	totalCost := types.TotalCost(plan)

	uniqueTypes := make(map[string]struct{})
	var vibeMatches int
	var ratingSum float64
	for _, v := range plan {
		uniqueTypes[strings.ToLower(v.PrimaryType)] = struct{}{}
		for _, target := range vibes {
			if v.HasVibe(target) {
				vibeMatches++
				break
			}
		}
		ratingSum += v.Rating
	}

	n := float64(len(plan))
	return PlanMetrics{
		BudgetOK:      totalCost <= budget,
		TotalCost:     totalCost,
		DiversityPct:  float64(len(uniqueTypes)) / n * 100,
		VibeMatchPct:  float64(vibeMatches) / n * 100,
		AverageRating: ratingSum / n,
		Fitness:       itinerary.EvaluateItinerary(plan, prefs, cfg, tax),
	}
}

// RandomBaseline picks random affordable venues: the control every real
// planner has to beat.
func RandomBaseline(pool []types.Venue, stops int, budget float64, rng *rand.Rand) []types.Venue {
	affordable := make([]types.Venue, 0, len(pool))
	for _, v := range pool {
		if v.Cost <= budget {
			affordable = append(affordable, v)
		}
	}
	if len(affordable) <= stops {
		return affordable
	}

	plan := make([]types.Venue, 0, stops)
	for _, idx := range rng.Perm(len(affordable))[:stops] {
		plan = append(plan, affordable[idx])
	}
	return plan
}

// PlannerResult aggregates one planner's performance across scenarios.
type PlannerResult struct {
	Planner        string
	AvgFitness     float64
	AvgDiversity   float64
	AvgVibeMatch   float64
	AvgRating      float64
	BudgetOKRate   float64
	AvgPlanSeconds float64
}

// Suite compares the random baseline against both planners over a scenario set.
type Suite struct {
	logger    *slog.Logger
	service   itinerary.Service
	cfg       itinerary.ScoringConfig
	scenarios []Scenario
	rng       *rand.Rand
}

func NewSuite(service itinerary.Service, cfg itinerary.ScoringConfig, logger *slog.Logger, seed int64) *Suite {
	return &Suite{
		logger:    logger,
		service:   service,
		cfg:       cfg,
		scenarios: DefaultScenarios(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Run executes every scenario with each planner and returns the per-planner
// aggregates, random baseline first.
func (s *Suite) Run(ctx context.Context, pool []types.Venue) []PlannerResult {
	tax := itinerary.NewTaxonomy()
	tax.LearnFromPool(pool)

	type accumulator struct {
		metrics []PlanMetrics
		seconds float64
	}
	acc := map[string]*accumulator{
		"random":    {},
		"heuristic": {},
		"genetic":   {},
	}

	for _, scenario := range s.scenarios {
		s.logger.Info("running scenario",
			slog.String("description", scenario.Description),
			slog.Float64("budget", scenario.Budget),
			slog.Int("stops", scenario.Stops),
		)

		randomPlan := RandomBaseline(pool, scenario.Stops, scenario.Budget, s.rng)
		acc["random"].metrics = append(acc["random"].metrics,
			ComputePlanMetrics(randomPlan, scenario.Budget, scenario.Vibes, scenario.Types, s.cfg, tax))

		prefs := types.Preferences{
			TargetVibes:     scenario.Vibes,
			TargetTypes:     scenario.Types,
			BudgetLimit:     scenario.Budget,
			ItineraryLength: scenario.Stops,
			Randomness:      s.cfg.DefaultRandomness,
		}

		for _, strategy := range []types.Strategy{types.StrategyHeuristic, types.StrategyGenetic} {
			start := time.Now()
			result := s.service.Plan(ctx, pool, prefs, strategy)
			elapsed := time.Since(start).Seconds()

			a := acc[string(strategy)]
			a.seconds += elapsed
			if !result.Success {
				s.logger.Warn("planner failed scenario",
					slog.String("strategy", string(strategy)),
					slog.String("description", scenario.Description),
					slog.String("error", result.Error),
				)
				a.metrics = append(a.metrics, PlanMetrics{})
				continue
			}
			a.metrics = append(a.metrics,
				ComputePlanMetrics(result.Itinerary, scenario.Budget, scenario.Vibes, scenario.Types, s.cfg, tax))
		}
	}

	results := make([]PlannerResult, 0, len(acc))
	for _, planner := range []string{"random", "heuristic", "genetic"} {
		a := acc[planner]
		results = append(results, summarize(planner, a.metrics, a.seconds))
	}
	return results
}

func summarize(planner string, metrics []PlanMetrics, totalSeconds float64) PlannerResult {
	if len(metrics) == 0 {
		return PlannerResult{Planner: planner}
	}

	var out PlannerResult
	out.Planner = planner
	var budgetOK int
	for _, m := range metrics {
		out.AvgFitness += m.Fitness
		out.AvgDiversity += m.DiversityPct
		out.AvgVibeMatch += m.VibeMatchPct
		out.AvgRating += m.AverageRating
		if m.BudgetOK {
			budgetOK++
		}
	}
	n := float64(len(metrics))
	out.AvgFitness /= n
	out.AvgDiversity /= n
	out.AvgVibeMatch /= n
	out.AvgRating /= n
	out.BudgetOKRate = float64(budgetOK) / n * 100
	out.AvgPlanSeconds = totalSeconds / n
	return out
}
