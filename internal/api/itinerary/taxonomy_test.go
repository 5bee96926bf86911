package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

func TestMatchesTypeDirect(t *testing.T) {
	tax := testTaxonomy()

	italian := types.Venue{PrimaryType: "italian_restaurant", AllTypes: "italian_restaurant restaurant", Name: "Trattoria Roma"}
	thai := types.Venue{PrimaryType: "thai_restaurant", AllTypes: "thai_restaurant restaurant", Name: "Bangkok Garden"}

	assert.True(t, tax.MatchesType(italian, "italian"))
	assert.False(t, tax.MatchesType(thai, "italian"))
	assert.True(t, tax.MatchesType(thai, "thai"))
	assert.False(t, tax.MatchesType(italian, ""))
}

func TestMatchesTypeCuisineRoot(t *testing.T) {
	tax := testTaxonomy()

	// the name alone has to carry the match
	v := types.Venue{PrimaryType: "restaurant", AllTypes: "restaurant food", Name: "Ciao Italia"}
	assert.True(t, tax.MatchesType(v, "italian"))

	paris := types.Venue{PrimaryType: "restaurant", AllTypes: "restaurant", Name: "Chez Paris"}
	assert.True(t, tax.MatchesType(paris, "french"))

	tokyo := types.Venue{PrimaryType: "restaurant", AllTypes: "restaurant", Name: "Tokyo Kitchen"}
	assert.True(t, tax.MatchesType(tokyo, "japanese"))
}

func TestMatchesTypeRelatedTerms(t *testing.T) {
	tax := testTaxonomy()

	pizzeria := types.Venue{PrimaryType: "pizza_restaurant", AllTypes: "pizza_restaurant", Name: "Angelos Pizzeria"}
	assert.True(t, tax.MatchesType(pizzeria, "italian"), "pizzeria is a seeded italian synonym")

	pub := types.Venue{PrimaryType: "pub", AllTypes: "pub", Name: "The Crown"}
	assert.True(t, tax.MatchesType(pub, "bar"))
}

func TestMatchesTypeServedColumns(t *testing.T) {
	tax := testTaxonomy()

	wineBar := types.Venue{PrimaryType: "restaurant", AllTypes: "restaurant", Name: "Corks", ServesWine: true}
	assert.True(t, tax.MatchesType(wineBar, "wine"))

	brunchSpot := types.Venue{PrimaryType: "restaurant", AllTypes: "restaurant", Name: "Eggcetera", ServesBrunch: true}
	assert.True(t, tax.MatchesType(brunchSpot, "brunch"))
	assert.False(t, tax.MatchesType(brunchSpot, "wine"))
}

func TestMatchesTypeFeatureColumns(t *testing.T) {
	tax := testTaxonomy()

	patio := types.Venue{PrimaryType: "restaurant", AllTypes: "restaurant", Name: "Terrace", OutdoorSeating: true}
	assert.True(t, tax.MatchesType(patio, "patio"))
	assert.True(t, tax.MatchesType(patio, "outdoor"))

	kids := types.Venue{PrimaryType: "restaurant", AllTypes: "restaurant", Name: "Happy Meals", GoodForChildren: true}
	assert.True(t, tax.MatchesType(kids, "family"))
}

func TestMatchAny(t *testing.T) {
	tax := testTaxonomy()
	v := types.Venue{PrimaryType: "italian_restaurant", AllTypes: "italian_restaurant restaurant", Name: "Roma"}

	matched, ok := tax.MatchAny(v, []string{"thai", "italian"})
	assert.True(t, ok)
	assert.Equal(t, "italian", matched)

	_, ok = tax.MatchAny(v, []string{"thai", "japanese"})
	assert.False(t, ok)

	_, ok = tax.MatchAny(v, nil)
	assert.False(t, ok)
}

func TestIsCuisineTarget(t *testing.T) {
	tax := testTaxonomy()

	assert.True(t, tax.IsCuisineTarget("italian"))
	assert.True(t, tax.IsCuisineTarget("sushi"))
	assert.False(t, tax.IsCuisineTarget("bar"))
	assert.False(t, tax.IsCuisineTarget("park"))
}

func TestCuisine(t *testing.T) {
	tax := testTaxonomy()

	assert.Equal(t, "thai", tax.Cuisine(types.Venue{PrimaryType: "thai_restaurant"}))
	assert.Equal(t, "italian", tax.Cuisine(types.Venue{PrimaryType: "restaurant", AllTypes: "italian_restaurant"}))
	assert.Empty(t, tax.Cuisine(types.Venue{PrimaryType: "park"}))
}

func TestCuisineRoot(t *testing.T) {
	tests := []struct {
		target string
		root   string
		ok     bool
	}{
		{"italian", "itali", true},
		{"japanese", "japan", true},
		{"spanish", "span", true},
		{"mexican", "mexic", true},
		{"thai", "", false},
		{"bar", "", false},
		{"pho", "", false},
	}
	for _, tt := range tests {
		root, ok := cuisineRoot(tt.target)
		assert.Equal(t, tt.ok, ok, tt.target)
		assert.Equal(t, tt.root, root, tt.target)
	}
}

func TestLearnTypeVibes(t *testing.T) {
	tax := NewTaxonomy()
	pool := []types.Venue{
		{ID: "a", PrimaryType: "wine_bar", Vibes: "romantic"},
		{ID: "b", PrimaryType: "wine_bar", Vibes: "romantic,cozy"},
		{ID: "c", PrimaryType: "wine_bar", Vibes: "romantic"},
		{ID: "d", PrimaryType: "nightclub", Vibes: "energetic"},
	}
	tax.LearnFromPool(pool)

	assert.Contains(t, tax.VibesForType("wine_bar"), "romantic")
	assert.Contains(t, tax.VibesForType("nightclub"), "energetic")
	assert.Empty(t, tax.VibesForType("bakery"))
}

func TestLearnedRelationsNeverOverrideSeeds(t *testing.T) {
	tax := NewTaxonomy()
	pool := make([]types.Venue, 0, 5)
	for i := 0; i < 5; i++ {
		pool = append(pool, types.Venue{ID: string(rune('a' + i)), PrimaryType: "italian_steakhouse"})
	}
	tax.LearnFromPool(pool)

	assert.Equal(t, []string{"trattoria", "pizzeria", "ristorante"}, tax.Related("italian"))
}

func TestLearnedRelationsAreDeterministic(t *testing.T) {
	// six co-occurring terms compete for five slots: the survivors are picked
	// by count, ties broken lexically, never by map order
	pool := []types.Venue{
		{ID: "a", PrimaryType: "fusion_grill_steakhouse_winery_bistro_lounge_eatery"},
		{ID: "b", PrimaryType: "fusion_grill_steakhouse_winery_bistro_lounge_eatery"},
		{ID: "c", PrimaryType: "fusion_grill_steakhouse_winery_bistro_lounge_eatery"},
		{ID: "d", PrimaryType: "fusion_winery"},
	}

	want := []string{"winery", "bistro", "eatery", "grill", "lounge"}
	for i := 0; i < 10; i++ {
		tax := NewTaxonomy()
		tax.LearnFromPool(pool)
		assert.Equal(t, want, tax.Related("fusion"))
	}
}

func TestTimeAdjustment(t *testing.T) {
	tax := testTaxonomy()

	assert.Equal(t, 1.5, tax.TimeAdjustment("coffee_shop", 8), "coffee in the morning is boosted")
	assert.Equal(t, 0.5, tax.TimeAdjustment("bar", 8), "a bar at 8am clashes")
	assert.Equal(t, 1.5, tax.TimeAdjustment("bar", 23), "a bar at night is boosted")
	assert.Equal(t, 1.4, tax.TimeAdjustment("italian_restaurant", 19))
	assert.Equal(t, 1.0, tax.TimeAdjustment("park", 19), "neutral type at dinner time")
}

func TestTimePeriod(t *testing.T) {
	assert.Equal(t, "morning", timePeriod(6))
	assert.Equal(t, "lunch", timePeriod(12))
	assert.Equal(t, "afternoon", timePeriod(15))
	assert.Equal(t, "evening", timePeriod(19))
	assert.Equal(t, "night", timePeriod(23))
	assert.Equal(t, "night", timePeriod(2))
}
