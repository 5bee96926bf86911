package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"

	appLogger "github.com/FACorreiaa/go-date-itinerary/app/logger"
	"github.com/FACorreiaa/go-date-itinerary/app/tracer"
	"github.com/FACorreiaa/go-date-itinerary/config"
	"github.com/FACorreiaa/go-date-itinerary/internal/api/evaluation"
	"github.com/FACorreiaa/go-date-itinerary/internal/api/itinerary"
)

func main() {
	// --- Initial Loading ---
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	// --- Logger Setup ---
	logger := appLogger.Init(cfg.Mode)

	// --- Application Context & Shutdown ---
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Tracing & Metrics ---
	tracer.InitTracingAndMetrics(cfg.Server.MetricsPort)

	// --- Venue Dataset ---
	datasetPath := cfg.Dataset.Path
	if fromEnv := os.Getenv("VENUES_CSV"); fromEnv != "" {
		datasetPath = fromEnv
	}
	pool, err := evaluation.LoadVenuesCSV(datasetPath)
	if err != nil {
		logger.Error("Failed to load venue dataset", slog.String("path", datasetPath), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Loaded venue dataset", slog.String("path", datasetPath), slog.Int("venues", len(pool)))

	// --- Planner Service ---
	plannerCfg := cfg.Planner
	plannerCfg.LearnFromPool(pool, logger)
	service := itinerary.NewServiceImpl(plannerCfg, logger)
	service.LearnFromPool(ctx, pool)

	// --- Hyperparameter Tuning (optional) ---
	seed := cfg.Evaluation.Seed
	if seed == 0 {
		seed = 42
	}
	if trials := cfg.Evaluation.TuningTrials; trials > 0 {
		rng := rand.New(rand.NewSource(seed))
		tuned := evaluation.TuneGAParams(ctx, pool, trials, rng, logger)
		logger.Info("Tuning finished",
			slog.Int("trials", tuned.Trials),
			slog.Float64("best_avg_fitness", tuned.AvgFitness),
			slog.Int("population", tuned.Config.PopulationSize),
			slog.Int("generations", tuned.Config.Generations),
		)
		plannerCfg = tuned.Config
		service = itinerary.NewServiceImpl(plannerCfg, logger)
		service.LearnFromPool(ctx, pool)
	}

	// --- Planner Comparison ---
	suite := evaluation.NewSuite(service, plannerCfg, logger, seed)
	results := suite.Run(ctx, pool)
	printResults(results)

	logger.Info("Evaluation complete.")
}

func printResults(results []evaluation.PlannerResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLANNER\tFITNESS\tDIVERSITY %\tVIBE MATCH %\tAVG RATING\tBUDGET OK %\tAVG SECONDS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%.2f\t%.1f\t%.3f\n",
			r.Planner, r.AvgFitness, r.AvgDiversity, r.AvgVibeMatch, r.AvgRating, r.BudgetOKRate, r.AvgPlanSeconds)
	}
	w.Flush()
}
