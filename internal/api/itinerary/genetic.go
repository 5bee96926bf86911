package itinerary

import (
	"context"
	"log/slog"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// gaStats reports how the evolutionary run went; useful for logging, tuning
// and the stagnation tests.
type gaStats struct {
	Generations  int
	BestFitness  float64
	StoppedEarly bool
}

// runGeneticAlgorithm evolves a population of whole itineraries. Slower than
// the greedy planner but explores far more of the search space. The caller's
// randomness knob scales mutation up and crossover down.
func runGeneticAlgorithm(ctx context.Context, pool []types.Venue, prefs types.Preferences,
	cfg ScoringConfig, tax *Taxonomy, rng *rand.Rand, logger *slog.Logger) ([]types.Venue, gaStats) {

	working := make([]types.Venue, len(pool))
	copy(working, pool)

	working = filterExcluded(working, prefs.ExcludedSet())
	if len(working) == 0 {
		logger.Warn("all venues were excluded, returning empty itinerary")
		return nil, gaStats{}
	}

	applySimilarityScores(working, prefs.TargetTypes, prefs.TargetVibes, tax)

	// best matches first, for biased initialization and smart mutation
	sort.SliceStable(working, func(i, j int) bool {
		return working[i].SimilarityScore > working[j].SimilarityScore
	})

	mutationRate := cfg.MutationRate * (0.5 + prefs.Randomness)
	crossoverRate := cfg.CrossoverRate - prefs.Randomness*0.2

	var matching []types.Venue
	for _, v := range working {
		if v.SimilarityScore >= directMatchScore {
			matching = append(matching, v)
		}
	}

	dc := newDistanceCache()
	population := initPopulation(working, matching, prefs.ItineraryLength, cfg, rng)

	var (
		history    []float64
		stagnation int
		bestEver   float64
		stats      gaStats
	)

	for gen := 0; gen < cfg.Generations; gen++ {
		stats.Generations = gen + 1

		scores := evaluatePopulation(ctx, population, prefs, cfg, tax, dc)

		currentBest := maxOf(scores)
		history = append(history, currentBest)

		if currentBest > bestEver {
			bestEver = currentBest
			stagnation = 0
		} else {
			stagnation++
		}
		if stagnation >= cfg.StagnationLimit {
			stats.StoppedEarly = true
			break
		}

		// stuck populations get double mutation to shake loose
		currentMutation := mutationRate
		if len(history) > 5 && history[len(history)-1]-history[len(history)-5] < 1 {
			currentMutation = mutationRate * 2
			if currentMutation > 0.5 {
				currentMutation = 0.5
			}
		}

		type scoredInd struct {
			score float64
			ind   individual
		}
		scored := make([]scoredInd, len(population))
		for i := range population {
			scored[i] = scoredInd{score: scores[i], ind: population[i]}
		}
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

		nextGen := make([]individual, 0, cfg.PopulationSize)
		for i := 0; i < cfg.ElitismCount && i < len(scored); i++ {
			nextGen = append(nextGen, scored[i].ind.clone())
		}

		tournament := func() individual {
			best := scored[rng.Intn(len(scored))]
			for i := 1; i < cfg.TournamentSize; i++ {
				if c := scored[rng.Intn(len(scored))]; c.score > best.score {
					best = c
				}
			}
			return best.ind
		}

		diversity := populationDiversity(population)
		preferHigh := diversity < 0.3

		for len(nextGen) < cfg.PopulationSize {
			p1 := tournament()
			p2 := tournament()

			var child individual
			if rng.Float64() < crossoverRate {
				child = crossover(p1, p2, rng)
			} else {
				child = p1.clone()
			}

			child = mutate(child, working, currentMutation, preferHigh, rng)
			nextGen = append(nextGen, child)
		}

		population = nextGen
	}

	finalScores := evaluatePopulation(ctx, population, prefs, cfg, tax, dc)
	bestIdx := 0
	for i, s := range finalScores {
		if s > finalScores[bestIdx] {
			bestIdx = i
		}
	}

	// memetic refinement: hill-climb the winner before handing it back
	best := localSearch(population[bestIdx], working, prefs, cfg, tax, dc)
	best = enforceBudget(best, prefs.BudgetLimit)
	stats.BestFitness = calculateFitness(best, prefs, cfg, tax, dc)

	annotateReasons(best, prefs, tax)
	return types.SortByDateSequence(best), stats
}

// enforceBudget degrades an infeasible itinerary the same way the greedy
// planner does: when no affordable full-length plan exists the winner may
// still be over budget, so stops are dropped, most expensive first, until the
// budget holds. A shorter or empty plan beats an unaffordable one.
func enforceBudget(itin individual, budget float64) individual {
	for len(itin) > 0 && types.TotalCost(itin) > budget {
		worst := 0
		for i := range itin {
			if itin[i].Cost > itin[worst].Cost {
				worst = i
			}
		}
		itin = append(itin[:worst], itin[worst+1:]...)
	}
	return itin
}

// initPopulation mixes three seeding strategies: stage-diverse individuals
// guaranteed to carry a type match, similarity-biased picks, and fully random
// fills, so generation zero starts with both exploitation and diversity.
func initPopulation(working, matching []types.Venue, length int, cfg ScoringConfig, rng *rand.Rand) []individual {
	biasN := len(working) / 3
	if biasN > 30 {
		biasN = 30
	}

	population := make([]individual, 0, cfg.PopulationSize)
	for i := 0; i < cfg.PopulationSize; i++ {
		switch {
		case len(matching) > 0 && i < cfg.PopulationSize/2:
			population = append(population, createDiverseStageIndividual(working, matching, length, rng))
		case len(matching) > 0 && i < cfg.PopulationSize*8/10:
			population = append(population, createIndividual(working, length, biasN, rng))
		case len(matching) == 0 && i < cfg.PopulationSize*7/10:
			population = append(population, createIndividual(working, length, biasN, rng))
		default:
			population = append(population, createIndividual(working, length, 0, rng))
		}
	}
	return population
}

// evaluatePopulation scores every individual, fanning the work out across
// CPUs. Members are independent; the only synchronization point is the
// per-generation barrier this function provides by returning.
func evaluatePopulation(ctx context.Context, population []individual, prefs types.Preferences,
	cfg ScoringConfig, tax *Taxonomy, dc *distanceCache) []float64 {

	scores := make([]float64, len(population))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range population {
		g.Go(func() error {
			scores[i] = calculateFitness(population[i], prefs, cfg, tax, dc)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return scores
}

func maxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}
	return best
}
