package itinerary

import (
	"math/rand"
	"sort"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// individual is one candidate itinerary in the population.
type individual []types.Venue

func (ind individual) clone() individual {
	out := make(individual, len(ind))
	copy(out, ind)
	return out
}

func (ind individual) idSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(ind))
	for _, v := range ind {
		ids[v.ID] = struct{}{}
	}
	return ids
}

// createDiverseStageIndividual seeds an itinerary with one type-matching venue
// as the main event, then fills the remaining slots from different stages:
// for "french dinner" something like park -> french restaurant -> bar.
func createDiverseStageIndividual(pool, matching []types.Venue, length int, rng *rand.Rand) individual {
	selected := make(individual, 0, length)
	selectedIDs := make(map[string]struct{})

	mainStage := types.SlotMeal.Stage()
	if len(matching) > 0 {
		main := matching[rng.Intn(len(matching))]
		selected = append(selected, main)
		selectedIDs[main.ID] = struct{}{}
		mainStage = main.Stage()
	}

	// stages around the main event first, the rest as backup
	var desired []int
	if length >= 2 {
		if mainStage > 1 {
			desired = append(desired, 1)
		}
		if mainStage < 5 {
			desired = append(desired, mainStage+1)
		}
	}
	for s := 1; s <= 5; s++ {
		if s != mainStage && !intIn(desired, s) {
			desired = append(desired, s)
		}
	}

	for _, stage := range desired {
		if len(selected) >= length {
			break
		}

		stageVenues := make([]types.Venue, 0)
		for _, v := range pool {
			if _, taken := selectedIDs[v.ID]; taken {
				continue
			}
			if v.Stage() == stage {
				stageVenues = append(stageVenues, v)
			}
		}
		if len(stageVenues) == 0 {
			continue
		}

		// prefer well-matching venues but keep some variety
		sort.SliceStable(stageVenues, func(i, j int) bool {
			return stageVenues[i].SimilarityScore > stageVenues[j].SimilarityScore
		})
		head := len(stageVenues)
		if head > 10 {
			head = 10
		}
		pick := stageVenues[rng.Intn(head)]
		selected = append(selected, pick)
		selectedIDs[pick.ID] = struct{}{}
	}

	for len(selected) < length {
		remaining := venuesNotIn(pool, selectedIDs)
		if len(remaining) == 0 {
			break
		}
		pick := remaining[rng.Intn(len(remaining))]
		selected = append(selected, pick)
		selectedIDs[pick.ID] = struct{}{}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Stage() < selected[j].Stage()
	})
	return selected
}

// createIndividual builds a random itinerary. With biasTopN set, venues are
// drawn 70/30 from the similarity-sorted head versus the rest of the pool.
func createIndividual(pool []types.Venue, length, biasTopN int, rng *rand.Rand) individual {
	if len(pool) == 0 {
		return nil
	}

	if len(pool) < length {
		length = len(pool)
	}

	selected := make(individual, 0, length)
	selectedIDs := make(map[string]struct{})

	if biasTopN > 0 && len(pool) > biasTopN {
		top := pool[:biasTopN]
		rest := pool[biasTopN:]
		for len(selected) < length {
			var candidates []types.Venue
			if rng.Float64() < 0.7 {
				candidates = venuesNotIn(top, selectedIDs)
			} else {
				candidates = venuesNotIn(rest, selectedIDs)
			}
			if len(candidates) == 0 {
				candidates = venuesNotIn(pool, selectedIDs)
			}
			if len(candidates) == 0 {
				break
			}
			pick := candidates[rng.Intn(len(candidates))]
			selected = append(selected, pick)
			selectedIDs[pick.ID] = struct{}{}
		}
		return selected
	}

	for _, idx := range rng.Perm(len(pool))[:length] {
		selected = append(selected, pool[idx])
	}
	return selected
}

// crossover mates two itineraries. A coin flip chooses between a stage-aware
// merge that keeps good date flow and a classic order crossover. Neither
// variant may introduce a duplicate venue the parents did not already carry.
func crossover(p1, p2 individual, rng *rand.Rand) individual {
	if len(p1) < 2 {
		return p1.clone()
	}
	size := len(p1)

	if rng.Float64() < 0.5 {
		return stageMergeCrossover(p1, p2, size)
	}
	return orderCrossover(p1, p2, size, rng)
}

// stageMergeCrossover pools both parents' stops, deduplicates, sorts by stage
// and keeps the first size venues: a child with natural date flow.
func stageMergeCrossover(p1, p2 individual, size int) individual {
	unique := make(individual, 0, len(p1)+len(p2))
	seen := make(map[string]struct{})
	for _, v := range append(p1.clone(), p2...) {
		if _, dup := seen[v.ID]; dup {
			continue
		}
		unique = append(unique, v)
		seen[v.ID] = struct{}{}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Stage() < unique[j].Stage()
	})

	if len(unique) > size {
		unique = unique[:size]
	}
	return unique
}

// orderCrossover copies a contiguous segment from the first parent and fills
// the gaps from the second, skipping duplicates, with a repair pass that
// borrows any leftover unique stop from either parent.
func orderCrossover(p1, p2 individual, size int, rng *rand.Rand) individual {
	start := rng.Intn(size)
	end := rng.Intn(size)
	if start > end {
		start, end = end, start
	}

	child := make(individual, size)
	filled := make([]bool, size)
	childIDs := make(map[string]struct{})
	for i := start; i <= end; i++ {
		child[i] = p1[i]
		filled[i] = true
		childIDs[p1[i].ID] = struct{}{}
	}

	fill := venuesNotIn(p2, childIDs)
	next := 0
	for i := 0; i < size; i++ {
		if filled[i] || next >= len(fill) {
			continue
		}
		child[i] = fill[next]
		childIDs[fill[next].ID] = struct{}{}
		filled[i] = true
		next++
	}

	// repair: both parents together always hold enough unique venues
	for i := 0; i < size; i++ {
		if filled[i] {
			continue
		}
		for _, parent := range []individual{p1, p2} {
			borrowed := false
			for _, v := range parent {
				if _, dup := childIDs[v.ID]; !dup {
					child[i] = v
					childIDs[v.ID] = struct{}{}
					filled[i] = true
					borrowed = true
					break
				}
			}
			if borrowed {
				break
			}
		}
	}

	// drop any slot that could not be repaired
	out := make(individual, 0, size)
	for i, ok := range filled {
		if ok {
			out = append(out, child[i])
		}
	}
	return out
}

type mutationOp int

const (
	mutReplace mutationOp = iota
	mutSwap
	mutSmartReplace
	mutSequenceFix
	mutStageSwap
)

// mutate perturbs a child with probability rate, using one of five operators
// picked at random. preferHighScore biases replacements towards well-matching
// venues; the GA sets it when population diversity has collapsed.
func mutate(ind individual, pool []types.Venue, rate float64, preferHighScore bool, rng *rand.Rand) individual {
	if rng.Float64() >= rate || len(ind) == 0 {
		return ind
	}

	currentIDs := ind.idSet()
	op := mutationOp(rng.Intn(5))

	switch {
	case op == mutSwap && len(ind) >= 2:
		i, j := rng.Intn(len(ind)), rng.Intn(len(ind))
		for i == j {
			j = rng.Intn(len(ind))
		}
		ind[i], ind[j] = ind[j], ind[i]

	case op == mutSequenceFix:
		// directly repairs date flow
		sort.SliceStable(ind, func(i, j int) bool {
			return ind[i].Stage() < ind[j].Stage()
		})

	case op == mutStageSwap && len(ind) >= 2:
		// fix one adjacent out-of-order pair, dessert before dinner and such
		for i := 0; i < len(ind)-1; i++ {
			if ind[i].Stage() > ind[i+1].Stage() {
				ind[i], ind[i+1] = ind[i+1], ind[i]
				break
			}
		}

	case op == mutSmartReplace && preferHighScore:
		// pool arrives sorted by similarity, so the head is the good stuff
		topN := len(pool) / 5
		if topN < 5 {
			topN = 5
		}
		if topN > len(pool) {
			topN = len(pool)
		}
		candidates := venuesNotIn(pool[:topN], currentIDs)
		if len(candidates) > 0 {
			ind[rng.Intn(len(ind))] = candidates[rng.Intn(len(candidates))]
		}

	default:
		idx := rng.Intn(len(ind))
		samples := 10
		if samples > len(pool) {
			samples = len(pool)
		}
		for _, pi := range rng.Perm(len(pool))[:samples] {
			if _, dup := currentIDs[pool[pi].ID]; !dup {
				ind[idx] = pool[pi]
				break
			}
		}
	}

	return ind
}

// populationDiversity measures how different the population's itineraries
// are: 0 means everyone picked the same venues, 1 means no overlap at all.
func populationDiversity(population []individual) float64 {
	var total int
	unique := make(map[string]struct{})
	for _, ind := range population {
		for _, v := range ind {
			unique[v.ID] = struct{}{}
			total++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(len(unique)) / float64(total)
}

func venuesNotIn(pool []types.Venue, exclude map[string]struct{}) []types.Venue {
	out := make([]types.Venue, 0, len(pool))
	for _, v := range pool {
		if _, skip := exclude[v.ID]; !skip {
			out = append(out, v)
		}
	}
	return out
}

func intIn(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
