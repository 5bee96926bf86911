package types

import "strings"

// Slot is the coarse bucket a venue occupies in a date's flow.
type Slot string

const (
	SlotActivity Slot = "activity"
	SlotCoffee   Slot = "coffee"
	SlotMeal     Slot = "meal"
	SlotDrinks   Slot = "drinks"
	SlotDessert  Slot = "dessert"
	SlotOther    Slot = "other"
)

// slotStages orders slots into the natural date sequence
// (activity -> coffee -> meal -> drinks -> dessert).
var slotStages = map[Slot]int{
	SlotActivity: 1,
	SlotCoffee:   2,
	SlotMeal:     3,
	SlotDrinks:   4,
	SlotDessert:  5,
	SlotOther:    3, // unknown venues default to the meal position
}

// Stage returns the date-flow position for a slot.
func (s Slot) Stage() int {
	if stage, ok := slotStages[s]; ok {
		return stage
	}
	return slotStages[SlotOther]
}

// Venue is one candidate place or activity. Records arrive read-only from the
// caller; the engine only ever fills the transient SelectionReason and
// SimilarityScore fields, scoped to a single planning call.
type Venue struct {
	ID              string  `json:"id" db:"id"`
	Name            string  `json:"name" db:"name"`
	Latitude        float64 `json:"lat" db:"lat"`
	Longitude       float64 `json:"lon" db:"lon"`
	Cost            float64 `json:"cost" db:"cost"`
	Rating          float64 `json:"rating" db:"rating"`
	ReviewsCount    int     `json:"reviews_count" db:"reviews_count"`
	PrimaryType     string  `json:"type" db:"type"`
	AllTypes        string  `json:"all_types" db:"all_types"`
	DisplayTypeName string  `json:"primary_type_display_name" db:"primary_type_display_name"`
	Vibes           string  `json:"true_vibe" db:"true_vibe"` // comma-joined vibe tags
	Address         string  `json:"address" db:"address"`
	ShortAddress    string  `json:"short_address" db:"short_address"`
	OpeningHours    string  `json:"opening_hours,omitempty" db:"opening_hours"` // Google Places periods JSON

	Reservable            bool `json:"reservable" db:"reservable"`
	OutdoorSeating        bool `json:"outdoor_seating" db:"outdoor_seating"`
	GoodForChildren       bool `json:"good_for_children" db:"good_for_children"`
	GoodForGroups         bool `json:"good_for_groups" db:"good_for_groups"`
	GoodForWatchingSports bool `json:"good_for_watching_sports" db:"good_for_watching_sports"`
	LiveMusic             bool `json:"live_music" db:"live_music"`
	AllowsDogs            bool `json:"allows_dogs" db:"allows_dogs"`
	ServesVegetarian      bool `json:"serves_vegetarian" db:"serves_vegetarian"`
	ServesBreakfast       bool `json:"serves_breakfast" db:"serves_breakfast"`
	ServesBrunch          bool `json:"serves_brunch" db:"serves_brunch"`
	ServesLunch           bool `json:"serves_lunch" db:"serves_lunch"`
	ServesDinner          bool `json:"serves_dinner" db:"serves_dinner"`
	ServesCoffee          bool `json:"serves_coffee" db:"serves_coffee"`
	ServesDessert         bool `json:"serves_dessert" db:"serves_dessert"`
	ServesBeer            bool `json:"serves_beer" db:"serves_beer"`
	ServesWine            bool `json:"serves_wine" db:"serves_wine"`
	ServesCocktails       bool `json:"serves_cocktails" db:"serves_cocktails"`
	Takeout               bool `json:"takeout" db:"takeout"`
	Delivery              bool `json:"delivery" db:"delivery"`
	DineIn                bool `json:"dine_in" db:"dine_in"`

	// Transient, valid only within one planning call.
	SelectionReason string  `json:"selection_reason,omitempty" db:"-"`
	SimilarityScore float64 `json:"similarity_score,omitempty" db:"-"`
}

// VenueFeatures is the normalized boolean feature set; missing values are false.
type VenueFeatures struct {
	GoodForGroups    bool
	GoodForChildren  bool
	GoodForSports    bool
	LiveMusic        bool
	OutdoorSeating   bool
	AllowsDogs       bool
	Reservable       bool
	ServesVegetarian bool
	Takeout          bool
	Delivery         bool
	DineIn           bool
}

// Features normalizes the venue's boolean attributes.
func (v Venue) Features() VenueFeatures {
	return VenueFeatures{
		GoodForGroups:    v.GoodForGroups,
		GoodForChildren:  v.GoodForChildren,
		GoodForSports:    v.GoodForWatchingSports,
		LiveMusic:        v.LiveMusic,
		OutdoorSeating:   v.OutdoorSeating,
		AllowsDogs:       v.AllowsDogs,
		Reservable:       v.Reservable,
		ServesVegetarian: v.ServesVegetarian,
		Takeout:          v.Takeout,
		Delivery:         v.Delivery,
		DineIn:           v.DineIn,
	}
}

var (
	dessertKeywords  = []string{"bakery", "ice_cream", "dessert", "pastry", "donut", "candy"}
	drinksKeywords   = []string{"bar", "pub", "brewery", "nightclub", "lounge"}
	activityKeywords = []string{
		"park", "museum", "gallery", "cinema", "theater", "theatre",
		"bowling", "spa", "gym", "recreation", "attraction",
		"amusement", "zoo", "aquarium", "skating",
	}
	coffeeKeywords = []string{"coffee", "cafe", "café", "tea_house"}
)

// Slot classifies the venue from its type text. Order matters: dessert wins
// over drinks, restaurant-bars count as meals, not bars.
func (v Venue) Slot() Slot {
	primary := strings.ToLower(v.PrimaryType)
	combined := strings.ToLower(v.AllTypes) + " " + primary

	if containsAny(combined, dessertKeywords) {
		return SlotDessert
	}
	if containsAny(combined, drinksKeywords) && !strings.Contains(primary, "restaurant") {
		return SlotDrinks
	}
	if strings.Contains(combined, "restaurant") || strings.Contains(combined, "food") || strings.Contains(combined, "dining") {
		return SlotMeal
	}
	if containsAny(combined, activityKeywords) {
		return SlotActivity
	}
	if containsAny(combined, coffeeKeywords) {
		return SlotCoffee
	}
	return SlotOther
}

// Stage returns the date-flow position (1-5) for the venue.
func (v Venue) Stage() int {
	return v.Slot().Stage()
}

// VibeTags splits the comma-joined vibe column into normalized tags.
func (v Venue) VibeTags() []string {
	if v.Vibes == "" {
		return nil
	}
	parts := strings.Split(v.Vibes, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.ToLower(strings.TrimSpace(p)); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HasVibe reports whether the venue carries the given vibe tag.
func (v Venue) HasVibe(vibe string) bool {
	vibe = strings.ToLower(strings.TrimSpace(vibe))
	for _, tag := range v.VibeTags() {
		if tag == vibe {
			return true
		}
	}
	return false
}

// SearchText joins every type-ish field into one lowercase haystack.
func (v Venue) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		strings.ReplaceAll(v.PrimaryType, "_", " "),
		strings.ReplaceAll(v.AllTypes, "_", " "),
		v.DisplayTypeName,
		v.Name,
	}, " "))
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
