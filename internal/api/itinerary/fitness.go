package itinerary

import (
	"strings"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// calculateFitness scores a whole itinerary for the genetic planner. The idea:
// a cuisine request gets ONE restaurant of that cuisine plus complementary
// stops, a category request gets all of that category, and a wrong-cuisine
// restaurant is close to disqualifying. Hard constraint violations
// (duplicates, budget) zero the score outright.
func calculateFitness(itin []types.Venue, prefs types.Preferences, cfg ScoringConfig,
	tax *Taxonomy, dc *distanceCache) float64 {

	score := cfg.GAInitialScore

	seen := make(map[string]struct{}, len(itin))
	for _, v := range itin {
		if _, dup := seen[v.ID]; dup {
			return 0
		}
		seen[v.ID] = struct{}{}
	}
	if types.TotalCost(itin) > prefs.BudgetLimit {
		return 0
	}

	if len(prefs.TargetTypes) > 0 {
		covered := make(map[string]struct{})
		for _, v := range itin {
			for _, target := range prefs.TargetTypes {
				if tax.MatchesType(v, target) {
					covered[target] = struct{}{}
				}
			}
		}

		score += float64(len(covered)) * cfg.GATypeCoverageBonus
		if len(covered) == len(prefs.TargetTypes) {
			score += cfg.GAFullTypeCoverageBonus
		}
		score -= float64(len(prefs.TargetTypes)-len(covered)) * cfg.GAMissingTypePenalty

		// a single cuisine-like request ("italian dinner") must not drag in
		// restaurants of another cuisine
		if len(prefs.TargetTypes) == 1 {
			target := strings.ToLower(prefs.TargetTypes[0])
			if tax.IsCuisineTarget(target) {
				for _, v := range itin {
					if v.Slot() == types.SlotMeal && !tax.MatchesType(v, target) {
						score -= cfg.WrongCuisinePenalty
					}
				}
			}
		}
	}

	if len(itin) >= 2 {
		slots := make(map[types.Slot]struct{})
		for _, v := range itin {
			slots[v.Slot()] = struct{}{}
		}
		score += float64(len(slots)) * cfg.GADiversityBonus

		ascending := true
		for i := 0; i < len(itin)-1; i++ {
			if itin[i].Stage() > itin[i+1].Stage() {
				ascending = false
				break
			}
		}
		if ascending {
			score += cfg.GAGoodFlowBonus
		}
	}

	for _, v := range itin {
		rating := v.Rating
		if rating <= 0 {
			rating = 3.0
		}
		if prefs.HiddenGem {
			if v.ReviewsCount >= cfg.HiddenGemMinReviews && v.ReviewsCount <= cfg.HiddenGemMaxReviews {
				score += cfg.HiddenGemBonus
			}
		} else {
			score += rating * cfg.GARatingMultiplier
		}
	}

	for i := 0; i < len(itin)-1; i++ {
		dist := dc.between(itin[i].Latitude, itin[i].Longitude, itin[i+1].Latitude, itin[i+1].Longitude)
		score -= dist * cfg.GADistancePenalty
	}

	if len(prefs.TargetVibes) > 0 {
		for _, v := range itin {
			vibes := v.VibeTags()
			for _, target := range prefs.TargetVibes {
				if tagIn(vibes, target) {
					score += cfg.GAVibeMatchBonus
					break
				}
			}
		}
	}

	filter := strings.ToLower(strings.TrimSpace(prefs.LocationFilter))
	if filter != "" && filter != strings.ToLower(cfg.DefaultArea) {
		for _, v := range itin {
			addr := strings.ToLower(v.Address + v.ShortAddress)
			if !strings.Contains(addr, filter) {
				score -= cfg.GALocationMismatchPenalty
			}
		}
	}

	for _, v := range itin {
		score += featureCrossBonus(v, prefs.TargetVibes, cfg)
	}

	if score < 0 {
		return 0
	}
	return score
}
