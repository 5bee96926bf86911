package itinerary

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// Thresholds for the human-readable justification attached to each stop.
const (
	strongSimilarity = 0.6
	decentSimilarity = 0.4
	highlyRated      = 4.5
)

// selectionReason builds a short explanation of why a stop was picked: vibe
// match, request match, rating, hidden gem, or fulfilled type, falling back
// to a generic phrase.
func selectionReason(v types.Venue, prefs types.Preferences, tax *Taxonomy, neededTypes []string) string {
	var reasons []string

	if len(prefs.TargetVibes) > 0 {
		for _, target := range prefs.TargetVibes {
			if v.HasVibe(target) {
				reasons = append(reasons, fmt.Sprintf("matches '%s' vibe", prefs.TargetVibes[0]))
				break
			}
		}
	}

	if v.SimilarityScore > strongSimilarity {
		reasons = append(reasons, "matches your request perfectly")
	} else if v.SimilarityScore > decentSimilarity {
		reasons = append(reasons, "good match")
	}

	if v.Rating >= highlyRated {
		reasons = append(reasons, "highly rated")
	} else if prefs.HiddenGem && v.ReviewsCount >= 10 && v.ReviewsCount <= 300 {
		reasons = append(reasons, "is a hidden gem")
	}

	if matched, ok := tax.MatchAny(v, neededTypes); ok {
		reasons = append(reasons, fmt.Sprintf("is a %s", matched))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "fits the itinerary")
	}
	return capitalize(strings.Join(reasons, ", "))
}

// annotateReasons fills SelectionReason on a finished plan, used by the
// genetic planner whose stops are only known at the end.
func annotateReasons(plan []types.Venue, prefs types.Preferences, tax *Taxonomy) {
	for i := range plan {
		var reasons []string

		if plan[i].SimilarityScore > strongSimilarity {
			reasons = append(reasons, "matches your request perfectly")
		} else if plan[i].SimilarityScore > decentSimilarity {
			reasons = append(reasons, "good match")
		}

		if plan[i].Rating >= highlyRated {
			reasons = append(reasons, "highly rated")
		}
		if prefs.HiddenGem && plan[i].ReviewsCount >= 10 && plan[i].ReviewsCount <= 300 {
			reasons = append(reasons, "hidden gem")
		}

		if matched, ok := tax.MatchAny(plan[i], prefs.TargetTypes); ok {
			reasons = append(reasons, fmt.Sprintf("is a %s", matched))
		}

		if len(reasons) == 0 {
			reasons = append(reasons, "good fit")
		}
		plan[i].SelectionReason = capitalize(strings.Join(reasons, ", "))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
