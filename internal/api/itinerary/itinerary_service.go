package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-date-itinerary/app/tracer"
	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the engine boundary: a pure function from a venue pool and
// preferences to an ordered, annotated itinerary. No error ever crosses this
// boundary; failures come back inside the PlanResult.
type Service interface {
	Plan(ctx context.Context, venues []types.Venue, prefs types.Preferences, strategy types.Strategy) types.PlanResult
	LearnFromPool(ctx context.Context, venues []types.Venue)
}

// ServiceImpl plans itineraries over caller-supplied venue pools. Safe for
// concurrent use: each Plan call gets its own rng and distance cache, and the
// learned configuration is immutable after the one-time learning step.
type ServiceImpl struct {
	logger *slog.Logger

	mu       sync.RWMutex
	cfg      ScoringConfig
	taxonomy *Taxonomy
	learned  bool

	// seed pins per-call rngs for reproducible runs; zero means wall clock.
	seed int64
}

func NewServiceImpl(cfg ScoringConfig, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		cfg:      cfg,
		taxonomy: NewTaxonomy(),
	}
}

// LearnFromPool derives the data-dependent scoring weights and taxonomy from
// a representative venue table. Idempotent: only the first successful call
// updates the config, later calls are no-ops.
func (s *ServiceImpl) LearnFromPool(ctx context.Context, venues []types.Venue) {
	_, span := otel.Tracer("ItineraryService").Start(ctx, "LearnFromPool", trace.WithAttributes(
		attribute.Int("venues.count", len(venues)),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.learned {
		span.SetStatus(codes.Ok, "Already learned")
		return
	}
	if len(venues) == 0 {
		s.logger.Warn("learning skipped, empty venue pool")
		span.SetStatus(codes.Ok, "Empty pool, defaults kept")
		return
	}

	s.cfg.LearnFromPool(venues, s.logger)
	tax := NewTaxonomy()
	tax.LearnFromPool(venues)
	s.taxonomy = tax
	s.learned = true
	span.SetStatus(codes.Ok, "Learned from pool")
}

// Plan builds an itinerary with the requested strategy. Panics from malformed
// venue records are captured here and reported as a failed result.
func (s *ServiceImpl) Plan(ctx context.Context, venues []types.Venue, prefs types.Preferences, strategy types.Strategy) (result types.PlanResult) {
	planID := uuid.New()
	start := time.Now()

	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "Plan", trace.WithAttributes(
		attribute.String("app.plan.id", planID.String()),
		attribute.String("app.plan.strategy", string(strategy)),
		attribute.Int("app.plan.pool_size", len(venues)),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("planning panicked", "plan_id", planID, "panic", r)
			span.SetStatus(codes.Error, "Planner panicked")
			result = types.FailedPlan(fmt.Sprintf("internal planner error: %v", r))
		}
		tracer.RecordPlan(ctx, string(strategy), time.Since(start), result.Success)
	}()

	if len(venues) == 0 {
		span.SetStatus(codes.Error, "No venues available")
		return types.FailedPlan("no venues available")
	}

	// learn once, lazily, from the first pool we see
	s.LearnFromPool(ctx, venues)

	s.mu.RLock()
	cfg := s.cfg
	tax := s.taxonomy
	seed := s.seed
	s.mu.RUnlock()

	prefs = normalizePreferences(prefs, cfg)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := s.logger.With(
		slog.String("plan_id", planID.String()),
		slog.String("strategy", string(strategy)),
	)
	logger.Debug("planning started",
		slog.Int("pool_size", len(venues)),
		slog.Float64("budget", prefs.BudgetLimit),
		slog.Int("length", prefs.ItineraryLength),
	)

	var plan []types.Venue
	switch strategy {
	case types.StrategyHeuristic:
		plan = runHeuristicSearch(venues, prefs, cfg, tax, rng)
	case types.StrategyGenetic:
		var stats gaStats
		plan, stats = runGeneticAlgorithm(ctx, venues, prefs, cfg, tax, rng, logger)
		span.SetAttributes(
			attribute.Int("app.plan.generations", stats.Generations),
			attribute.Float64("app.plan.best_fitness", stats.BestFitness),
			attribute.Bool("app.plan.stopped_early", stats.StoppedEarly),
		)
		tracer.RecordGenerations(ctx, stats.Generations)
	default:
		span.SetStatus(codes.Error, "Unknown strategy")
		return types.FailedPlan(fmt.Sprintf("unknown strategy %q", strategy))
	}

	logger.Info("planning completed",
		slog.Int("stops", len(plan)),
		slog.Float64("total_cost", types.TotalCost(plan)),
		slog.Duration("elapsed", time.Since(start)),
	)
	span.SetAttributes(attribute.Int("app.plan.stops", len(plan)))
	span.SetStatus(codes.Ok, "Itinerary planned")

	return types.PlanResult{
		Success:   true,
		Itinerary: plan,
		Length:    len(plan),
	}
}

// EvaluateItinerary exposes the genetic fitness for offline evaluation. The
// distance cache lives only for this one call.
func EvaluateItinerary(plan []types.Venue, prefs types.Preferences, cfg ScoringConfig, tax *Taxonomy) float64 {
	return calculateFitness(plan, prefs, cfg, tax, newDistanceCache())
}

// normalizePreferences substitutes configured defaults for unset fields.
func normalizePreferences(prefs types.Preferences, cfg ScoringConfig) types.Preferences {
	if prefs.BudgetLimit <= 0 {
		prefs.BudgetLimit = cfg.DefaultBudget
	}
	if prefs.ItineraryLength <= 0 {
		prefs.ItineraryLength = cfg.DefaultItineraryLength
	}
	if prefs.Randomness < 0 {
		prefs.Randomness = 0
	}
	if prefs.Randomness > 1 {
		prefs.Randomness = 1
	}
	return prefs
}
