package itinerary

import (
	"math"
	"math/rand"
	"strings"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// rejectedScore marks a venue that violates a hard constraint. It is a
// sentinel, not a penalty: callers must drop the venue entirely.
const rejectedScore = -1

// scoreState is the running itinerary context a candidate is scored against.
type scoreState struct {
	runningCost  float64
	lastLocation *types.Venue
	visitedTypes map[string]struct{}
	stopIndex    int
	hour         int
	hasHour      bool
}

// hoursPerStop advances the estimated clock between consecutive stops.
const hoursPerStop = 2

// scoreVenue rates one venue against the current itinerary state. Higher is
// better; rejectedScore means the venue breaks the budget. Missing optional
// fields score neutrally, the function never fails.
func scoreVenue(v types.Venue, st scoreState, prefs types.Preferences, cfg ScoringConfig,
	tax *Taxonomy, neededTypes []string, rng *rand.Rand) float64 {

	// hard constraint, checked before anything else
	if st.runningCost+v.Cost > prefs.BudgetLimit {
		return rejectedScore
	}

	var score float64
	venueVibes := v.VibeTags()

	for _, target := range prefs.TargetVibes {
		if tagIn(venueVibes, target) {
			score += cfg.VibeMatchBonus
		}
	}
	if tagIn(venueVibes, "neutral") {
		score += cfg.NeutralVibeBonus
	}

	rating := v.Rating
	if rating <= 0 {
		rating = 3.0
	}
	reviews := float64(v.ReviewsCount)

	if prefs.HiddenGem {
		// few reviews plus a good rating is exactly what a hidden gem is
		if v.ReviewsCount >= cfg.HiddenGemMinReviews && v.ReviewsCount <= cfg.HiddenGemMaxReviews {
			score += cfg.HiddenGemBonus
		} else if v.ReviewsCount > cfg.HiddenGemPopularityCutoff {
			score -= cfg.HiddenGemPopularityPenalty
		}
		score += rating * cfg.HiddenGemRatingMultiplier
	} else {
		// Bayesian average (R*v + C*m) / (v + m): a 5-star with 2 reviews
		// must not beat a 4.5-star with 500 reviews
		c := cfg.BayesianAverageConstant
		m := cfg.BayesianMinReviews
		bayesian := (rating*reviews + c*m) / (reviews + m)
		score += bayesian * cfg.RatingMultiplier
	}

	// a little noise so repeated calls do not always return identical picks
	score += rng.Float64() * cfg.RandomnessMultiplier * (rating / 5.0)

	// superlinear distance penalty keeps consecutive stops walkable
	if st.lastLocation != nil {
		dist := haversineKm(st.lastLocation.Latitude, st.lastLocation.Longitude, v.Latitude, v.Longitude)
		score -= math.Pow(dist, cfg.DistanceExponent) * cfg.DistancePenaltyMultiplier
	}

	if _, matched := tax.MatchAny(v, neededTypes); matched {
		score += cfg.TypeMatchBonus
	} else if len(neededTypes) > 0 {
		switch v.Slot() {
		case types.SlotMeal:
			// a restaurant of the wrong kind: the pho-for-italian-dinner case
			score -= cfg.WrongCuisinePenalty
		case types.SlotActivity, types.SlotDrinks, types.SlotDessert, types.SlotCoffee:
			score += cfg.ComplementaryVenueBonus
		default:
			score -= cfg.UnknownSlotPenalty
		}
	}

	score += v.SimilarityScore * 100

	venueType := strings.ToLower(v.PrimaryType)
	if venueType != "" {
		if _, repeated := st.visitedTypes[venueType]; repeated {
			score -= cfg.RepeatedTypePenalty
		}
	}
	category := venueType
	if idx := strings.Index(venueType, "_"); idx >= 0 {
		category = venueType[:idx]
	}
	if category != "" {
		if _, seen := st.visitedTypes[category]; !seen {
			score += cfg.NewCategoryBonus
		}
	}

	if st.hasHour {
		estimatedHour := (st.hour + st.stopIndex*hoursPerStop) % 24
		if mult := tax.TimeAdjustment(venueType, estimatedHour); mult != 1.0 {
			score *= mult
		}
	}

	score += featureCrossBonus(v, prefs.TargetVibes, cfg)

	return score
}

// featureCrossBonus rewards venue attributes that suit the requested vibes:
// romantic wants reservations and no kids, outdoor wants a patio, and so on.
func featureCrossBonus(v types.Venue, targetVibes []string, cfg ScoringConfig) float64 {
	if len(targetVibes) == 0 {
		return 0
	}

	vibes := make(map[string]struct{}, len(targetVibes))
	for _, tv := range targetVibes {
		vibes[strings.ToLower(strings.TrimSpace(tv))] = struct{}{}
	}

	features := v.Features()
	var bonus float64

	if _, ok := vibes["romantic"]; ok {
		if features.Reservable {
			bonus += cfg.RomanticReservableBonus
		}
		if features.GoodForChildren {
			bonus -= cfg.RomanticKidsPenalty
		}
	}
	if _, outdoor := vibes["outdoor"]; outdoor {
		if features.OutdoorSeating {
			bonus += cfg.OutdoorSeatingBonus
		}
	} else if _, outdoors := vibes["outdoors"]; outdoors && features.OutdoorSeating {
		bonus += cfg.OutdoorSeatingBonus
	}
	if _, ok := vibes["family"]; ok && features.GoodForChildren {
		bonus += cfg.FamilyKidsBonus
	}
	if _, ok := vibes["energetic"]; ok && features.LiveMusic {
		bonus += cfg.EnergeticLiveMusicBonus
	}
	if features.GoodForGroups {
		for _, groupVibe := range []string{"group", "groups", "friends", "party"} {
			if _, ok := vibes[groupVibe]; ok {
				bonus += cfg.GroupFriendlyBonus
				break
			}
		}
	}
	return bonus
}

func tagIn(tags []string, target string) bool {
	target = strings.ToLower(strings.TrimSpace(target))
	for _, tag := range tags {
		if tag == target {
			return true
		}
	}
	return false
}
