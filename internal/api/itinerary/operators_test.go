package itinerary

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

func TestCrossoverNeverDuplicates(t *testing.T) {
	byID := poolByID(t)
	p1 := individual{byID["rest-italian"], byID["park"], byID["bar"]}
	p2 := individual{byID["bar"], byID["rest-thai"], byID["gelato"]}
	allowed := map[string]struct{}{
		"rest-italian": {}, "park": {}, "bar": {}, "rest-thai": {}, "gelato": {},
	}

	rng := testRng(99)
	for i := 0; i < 200; i++ {
		child := crossover(p1.clone(), p2.clone(), rng)

		assert.False(t, hasDuplicates(child))
		assert.LessOrEqual(t, len(child), len(p1))
		for _, v := range child {
			_, known := allowed[v.ID]
			assert.True(t, known, "child venues must come from a parent")
		}
	}
}

func TestStageMergeCrossoverKeepsFlow(t *testing.T) {
	byID := poolByID(t)
	p1 := individual{byID["bar"], byID["park"], byID["gelato"]}
	p2 := individual{byID["rest-italian"], byID["rest-thai"], byID["park"]}

	child := stageMergeCrossover(p1, p2, 3)
	require.Len(t, child, 3)
	assert.True(t, stagesAscending(child))
	assert.False(t, hasDuplicates(child))
}

func TestOrderCrossoverSize(t *testing.T) {
	byID := poolByID(t)
	p1 := individual{byID["rest-italian"], byID["park"], byID["bar"]}
	p2 := individual{byID["gelato"], byID["rest-thai"], byID["rest-italian"]}

	rng := testRng(5)
	for i := 0; i < 100; i++ {
		child := orderCrossover(p1, p2, 3, rng)
		assert.Len(t, child, 3, "both parents together always hold enough unique venues")
		assert.False(t, hasDuplicates(child))
	}
}

func TestMutatePreservesShape(t *testing.T) {
	pool := testPool()
	// mutation assumes a similarity-sorted pool; any stable order works here
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })

	rng := testRng(13)
	for i := 0; i < 200; i++ {
		ind := individual{pool[0], pool[2], pool[4]}
		mutated := mutate(ind, pool, 1.0, i%2 == 0, rng)

		assert.Len(t, mutated, 3)
		assert.False(t, hasDuplicates(mutated))
	}
}

func TestMutateRateZeroIsNoOp(t *testing.T) {
	byID := poolByID(t)
	ind := individual{byID["park"], byID["rest-italian"]}
	out := mutate(ind.clone(), testPool(), 0, false, testRng(1))
	assert.Equal(t, planIDs(ind), planIDs(out))
}

func TestCreateIndividual(t *testing.T) {
	pool := testPool()

	t.Run("respects requested length", func(t *testing.T) {
		ind := createIndividual(pool, 3, 0, testRng(1))
		assert.Len(t, ind, 3)
		assert.False(t, hasDuplicates(ind))
	})

	t.Run("caps at pool size", func(t *testing.T) {
		ind := createIndividual(pool[:2], 5, 0, testRng(1))
		assert.Len(t, ind, 2)
	})

	t.Run("biased draw still yields unique venues", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			ind := createIndividual(pool, 4, 3, testRng(seed))
			assert.Len(t, ind, 4)
			assert.False(t, hasDuplicates(ind))
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		assert.Empty(t, createIndividual(nil, 3, 0, testRng(1)))
	})
}

func TestCreateDiverseStageIndividual(t *testing.T) {
	pool := testPool()
	byID := poolByID(t)
	matching := []types.Venue{byID["rest-italian"]}

	for seed := int64(0); seed < 20; seed++ {
		ind := createDiverseStageIndividual(pool, matching, 3, testRng(seed))

		require.Len(t, ind, 3)
		assert.False(t, hasDuplicates(ind))
		assert.Contains(t, planIDs(ind), "rest-italian", "the main event must survive seeding")
		assert.True(t, stagesAscending(ind))
	}
}

func TestPopulationDiversity(t *testing.T) {
	byID := poolByID(t)
	a := individual{byID["park"], byID["bar"]}
	b := individual{byID["rest-italian"], byID["gelato"]}

	assert.Equal(t, 1.0, populationDiversity([]individual{a, b}))
	assert.Equal(t, 0.5, populationDiversity([]individual{a, a.clone()}))
	assert.Zero(t, populationDiversity(nil))
}
