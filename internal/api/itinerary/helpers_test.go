package itinerary

import (
	"log/slog"
	"math/rand"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// testPool is a small downtown pool with one venue per role: the Italian
// restaurant the scenarios ask for, a free park, a bar, a wrong-cuisine
// restaurant, a dessert stop and one venue nobody can afford.
func testPool() []types.Venue {
	return []types.Venue{
		{
			ID:           "rest-italian",
			Name:         "Trattoria Roma",
			Latitude:     45.4215,
			Longitude:    -75.6972,
			Cost:         40,
			Rating:       4.5,
			ReviewsCount: 200,
			PrimaryType:  "italian_restaurant",
			AllTypes:     "italian_restaurant restaurant food",
			Vibes:        "romantic,cozy",
			Address:      "93 Murray St, Ottawa",
			Reservable:   true,
			ServesDinner: true,
			ServesWine:   true,
		},
		{
			ID:           "park",
			Name:         "Majors Hill Park",
			Latitude:     45.4270,
			Longitude:    -75.6945,
			Cost:         0,
			Rating:       4.7,
			ReviewsCount: 800,
			PrimaryType:  "park",
			AllTypes:     "park point_of_interest",
			Address:      "Mackenzie Ave, Ottawa",
		},
		{
			ID:              "bar",
			Name:            "The Velvet Room",
			Latitude:        45.4260,
			Longitude:       -75.6930,
			Cost:            20,
			Rating:          4.3,
			ReviewsCount:    150,
			PrimaryType:     "bar",
			AllTypes:        "bar night_club",
			Vibes:           "energetic",
			Address:         "62 York St, Ottawa",
			LiveMusic:       true,
			ServesCocktails: true,
		},
		{
			ID:           "rest-thai",
			Name:         "Bangkok Garden",
			Latitude:     45.4190,
			Longitude:    -75.6990,
			Cost:         35,
			Rating:       4.4,
			ReviewsCount: 300,
			PrimaryType:  "thai_restaurant",
			AllTypes:     "thai_restaurant restaurant food",
			Vibes:        "casual",
			Address:      "335 Catherine St, Ottawa",
			ServesDinner: true,
		},
		{
			ID:            "gelato",
			Name:          "Sweet Spot Gelateria",
			Latitude:      45.4280,
			Longitude:     -75.6920,
			Cost:          10,
			Rating:        4.6,
			ReviewsCount:  120,
			PrimaryType:   "ice_cream_shop",
			AllTypes:      "ice_cream_shop food",
			Vibes:         "cozy",
			Address:       "286 Dalhousie St, Ottawa",
			ServesDessert: true,
		},
		{
			ID:           "lux",
			Name:         "Le Chateau",
			Latitude:     45.4235,
			Longitude:    -75.6940,
			Cost:         500,
			Rating:       4.9,
			ReviewsCount: 900,
			PrimaryType:  "french_restaurant",
			AllTypes:     "french_restaurant restaurant fine_dining",
			Vibes:        "fancy,romantic",
			Address:      "1 Rideau St, Ottawa",
			Reservable:   true,
			ServesDinner: true,
		},
	}
}

func testTaxonomy() *Taxonomy {
	tax := NewTaxonomy()
	tax.LearnFromPool(testPool())
	return tax
}

func planIDs(plan []types.Venue) []string {
	ids := make([]string, len(plan))
	for i, v := range plan {
		ids[i] = v.ID
	}
	return ids
}

func hasDuplicates(plan []types.Venue) bool {
	seen := make(map[string]struct{}, len(plan))
	for _, v := range plan {
		if _, dup := seen[v.ID]; dup {
			return true
		}
		seen[v.ID] = struct{}{}
	}
	return false
}

func stagesAscending(plan []types.Venue) bool {
	for i := 0; i < len(plan)-1; i++ {
		if plan[i].Stage() > plan[i+1].Stage() {
			return false
		}
	}
	return true
}
