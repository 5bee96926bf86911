package tracer

import (
	"context"
	"log" // For fatal error on metric init failure
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	plansTotal          metric.Int64Counter
	planFailuresTotal   metric.Int64Counter
	planDurationSeconds metric.Float64Histogram
	generationsRun      metric.Int64Histogram

	metricsOnce sync.Once
)

// InitPlannerMetrics sets up the engine's metric instruments ONLY ONCE, using
// the globally configured MeterProvider.
func InitPlannerMetrics() {
	metricsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("DateItineraryEngine")
		var err error

		plansTotal, err = meter.Int64Counter(
			"itinerary_plans_total",
			metric.WithDescription("Total number of planning calls completed"),
			metric.WithUnit("{plan}"),
		)
		if err != nil {
			log.Fatalf("Failed to create itinerary_plans_total counter: %v", err)
		}

		planFailuresTotal, err = meter.Int64Counter(
			"itinerary_plan_failures_total",
			metric.WithDescription("Total number of planning calls that returned a failed result"),
			metric.WithUnit("{plan}"),
		)
		if err != nil {
			log.Fatalf("Failed to create itinerary_plan_failures_total counter: %v", err)
		}

		planDurationSeconds, err = meter.Float64Histogram(
			"itinerary_plan_duration_seconds",
			metric.WithDescription("Duration of planning calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Failed to create itinerary_plan_duration_seconds histogram: %v", err)
		}

		generationsRun, err = meter.Int64Histogram(
			"itinerary_ga_generations_run",
			metric.WithDescription("Generations executed per genetic planning call"),
			metric.WithUnit("{generation}"),
		)
		if err != nil {
			log.Fatalf("Failed to create itinerary_ga_generations_run histogram: %v", err)
		}

		log.Println("Planner metrics initialized successfully.")
	})
}

// RecordPlan records the outcome of one planning call. Safe to call before
// InitPlannerMetrics; it simply no-ops until the instruments exist.
func RecordPlan(ctx context.Context, strategy string, duration time.Duration, success bool) {
	if plansTotal == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("strategy", strategy))
	plansTotal.Add(ctx, 1, attrs)
	planDurationSeconds.Record(ctx, duration.Seconds(), attrs)
	if !success {
		planFailuresTotal.Add(ctx, 1, attrs)
	}
}

// RecordGenerations records how many generations a genetic run used.
func RecordGenerations(ctx context.Context, generations int) {
	if generationsRun == nil {
		return
	}
	generationsRun.Record(ctx, int64(generations))
}
