package itinerary

import "strings"

// timePreference describes which venue types make sense in a part of the day.
type timePreference struct {
	preferred []string
	avoid     []string
	boost     float64
}

// avoidMultiplier halves the score of a venue that fights the clock.
const avoidMultiplier = 0.5

var timePreferences = map[string]timePreference{
	"morning": { // 6am to 11am
		preferred: []string{"cafe", "coffee", "bakery", "breakfast", "brunch", "park"},
		avoid:     []string{"bar", "pub", "nightclub", "club"},
		boost:     1.5,
	},
	"lunch": { // 11am to 2pm
		preferred: []string{"restaurant", "cafe", "bistro", "deli", "food"},
		avoid:     []string{"nightclub", "club"},
		boost:     1.3,
	},
	"afternoon": { // 2pm to 5pm
		preferred: []string{"museum", "gallery", "park", "shopping", "cafe", "dessert"},
		avoid:     []string{"nightclub", "club"},
		boost:     1.2,
	},
	"evening": { // 5pm to 9pm, dinner time
		preferred: []string{"restaurant", "dinner", "italian", "french", "steakhouse"},
		avoid:     nil,
		boost:     1.4,
	},
	"night": { // 9pm to 6am
		preferred: []string{"bar", "pub", "lounge", "cocktail", "nightclub", "club"},
		avoid:     []string{"cafe", "breakfast", "brunch"},
		boost:     1.5,
	},
}

func timePeriod(hour int) string {
	switch {
	case hour >= 6 && hour < 11:
		return "morning"
	case hour >= 11 && hour < 14:
		return "lunch"
	case hour >= 14 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}

// TimeAdjustment returns a score multiplier for a venue type at a given hour:
// above 1.0 when the type fits the time of day, 0.5 when it clashes, 1.0 when
// neutral.
func (t *Taxonomy) TimeAdjustment(venueType string, hour int) float64 {
	prefs, ok := timePreferences[timePeriod(hour)]
	if !ok {
		return 1.0
	}

	lower := strings.ToLower(venueType)
	for _, p := range prefs.preferred {
		if strings.Contains(lower, p) {
			return prefs.boost
		}
	}
	for _, a := range prefs.avoid {
		if strings.Contains(lower, a) {
			return avoidMultiplier
		}
	}
	return 1.0
}
