package itinerary

import (
	"sort"
	"strings"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// seedRelatedTerms maps a request word to synonyms that identify the same kind
// of venue. Most relations are learned from data; these seeds cover the
// vocabulary a fresh pool cannot teach.
var seedRelatedTerms = map[string][]string{
	"coffee":   {"cafe", "café", "espresso"},
	"cafe":     {"coffee", "café"},
	"bar":      {"pub", "tavern", "lounge"},
	"pub":      {"bar", "tavern"},
	"italian":  {"trattoria", "pizzeria", "ristorante"},
	"pizza":    {"pizzeria"},
	"japanese": {"sushi", "ramen"},
	"sushi":    {"japanese"},
	"french":   {"bistro", "brasserie"},
}

// featureColumns maps user-facing request terms to boolean venue attributes.
var featureColumns = map[string]func(types.VenueFeatures) bool{
	"groups":       func(f types.VenueFeatures) bool { return f.GoodForGroups },
	"group":        func(f types.VenueFeatures) bool { return f.GoodForGroups },
	"kids":         func(f types.VenueFeatures) bool { return f.GoodForChildren },
	"children":     func(f types.VenueFeatures) bool { return f.GoodForChildren },
	"family":       func(f types.VenueFeatures) bool { return f.GoodForChildren },
	"sports":       func(f types.VenueFeatures) bool { return f.GoodForSports },
	"live music":   func(f types.VenueFeatures) bool { return f.LiveMusic },
	"music":        func(f types.VenueFeatures) bool { return f.LiveMusic },
	"outdoor":      func(f types.VenueFeatures) bool { return f.OutdoorSeating },
	"patio":        func(f types.VenueFeatures) bool { return f.OutdoorSeating },
	"dog-friendly": func(f types.VenueFeatures) bool { return f.AllowsDogs },
	"dogs":         func(f types.VenueFeatures) bool { return f.AllowsDogs },
	"pet-friendly": func(f types.VenueFeatures) bool { return f.AllowsDogs },
	"reservable":   func(f types.VenueFeatures) bool { return f.Reservable },
	"reservation":  func(f types.VenueFeatures) bool { return f.Reservable },
	"vegetarian":   func(f types.VenueFeatures) bool { return f.ServesVegetarian },
	"veggie":       func(f types.VenueFeatures) bool { return f.ServesVegetarian },
	"takeout":      func(f types.VenueFeatures) bool { return f.Takeout },
	"delivery":     func(f types.VenueFeatures) bool { return f.Delivery },
	"dine-in":      func(f types.VenueFeatures) bool { return f.DineIn },
}

// servedColumns maps meal/drink request terms to the serves_* attributes.
var servedColumns = map[string]func(types.Venue) bool{
	"breakfast": func(v types.Venue) bool { return v.ServesBreakfast },
	"brunch":    func(v types.Venue) bool { return v.ServesBrunch },
	"lunch":     func(v types.Venue) bool { return v.ServesLunch },
	"dinner":    func(v types.Venue) bool { return v.ServesDinner },
	"coffee":    func(v types.Venue) bool { return v.ServesCoffee },
	"dessert":   func(v types.Venue) bool { return v.ServesDessert },
	"beer":      func(v types.Venue) bool { return v.ServesBeer },
	"wine":      func(v types.Venue) bool { return v.ServesWine },
	"cocktails": func(v types.Venue) bool { return v.ServesCocktails },
}

// cuisineKeywords identify a target as a cuisine request rather than a broad
// category. Cuisine requests carry the wrong-cuisine penalty.
var cuisineKeywords = []string{
	"italian", "french", "japanese", "chinese", "vietnamese", "thai",
	"indian", "mexican", "korean", "greek", "mediterranean", "american",
	"pizza", "sushi", "ramen", "pho", "burger", "steak", "seafood",
	"bbq", "brazilian", "spanish", "german", "turkish", "lebanese",
}

// genericTypeWords would relate to almost every venue; never learned as terms.
var genericTypeWords = map[string]struct{}{
	"restaurant": {}, "food": {}, "establishment": {}, "point": {},
	"interest": {}, "store": {}, "shop": {}, "place": {}, "service": {},
	"the": {}, "and": {}, "bar": {}, "cafe": {},
	"ottawa": {}, "canada": {}, "ontario": {},
}

// Taxonomy holds the vocabulary learned from a venue pool: related request
// terms, which vibes usually go with which types, and time-of-day preferences.
// Learn once per pool, read-only afterwards.
type Taxonomy struct {
	related   map[string][]string
	typeVibes map[string][]string
}

// NewTaxonomy returns a taxonomy seeded with the hand-written relations.
func NewTaxonomy() *Taxonomy {
	related := make(map[string][]string, len(seedRelatedTerms))
	for term, rels := range seedRelatedTerms {
		related[term] = append([]string(nil), rels...)
	}
	return &Taxonomy{
		related:   related,
		typeVibes: make(map[string][]string),
	}
}

// LearnFromPool derives related terms from type-word co-occurrence and the
// type-to-vibe map from vibe frequency. Learned cuisine relations never
// override the seeds: "italian" must not learn "restaurant".
func (t *Taxonomy) LearnFromPool(pool []types.Venue) {
	t.learnTypeVibes(pool)
	t.learnRelatedTerms(pool)
}

func (t *Taxonomy) learnTypeVibes(pool []types.Venue) {
	counts := make(map[string]map[string]int)
	totals := make(map[string]int)

	for _, v := range pool {
		venueType := strings.ToLower(strings.TrimSpace(v.PrimaryType))
		if venueType == "" {
			continue
		}
		totals[venueType]++
		for _, vibe := range v.VibeTags() {
			if counts[venueType] == nil {
				counts[venueType] = make(map[string]int)
			}
			counts[venueType][vibe]++
		}
	}

	for venueType, vibeCounts := range counts {
		// keep vibes that appear in at least 20% of the type's venues
		threshold := float64(totals[venueType]) * 0.2
		var common []string
		for vibe, n := range vibeCounts {
			if float64(n) >= threshold {
				common = append(common, vibe)
			}
		}
		if len(common) > 0 {
			t.typeVibes[venueType] = common
		}
	}
}

func (t *Taxonomy) learnRelatedTerms(pool []types.Venue) {
	cooccur := make(map[string]map[string]int)

	for _, v := range pool {
		// only the primary type: all_types is full of generic noise
		text := strings.ToLower(strings.ReplaceAll(v.PrimaryType, "_", " "))
		seen := make(map[string]struct{})
		for _, w := range strings.Fields(text) {
			w = strings.TrimSpace(w)
			if len(w) < 4 {
				continue
			}
			if _, generic := genericTypeWords[w]; generic {
				continue
			}
			seen[w] = struct{}{}
		}

		words := make([]string, 0, len(seen))
		for w := range seen {
			words = append(words, w)
		}
		for i, w1 := range words {
			for _, w2 := range words[i+1:] {
				if cooccur[w1] == nil {
					cooccur[w1] = make(map[string]int)
				}
				if cooccur[w2] == nil {
					cooccur[w2] = make(map[string]int)
				}
				cooccur[w1][w2]++
				cooccur[w2][w1]++
			}
		}
	}

	for word, related := range cooccur {
		if _, seeded := t.related[word]; seeded {
			continue // seeds win over learned relations
		}
		var strong []string
		for rel, n := range related {
			if n >= 3 {
				strong = append(strong, rel)
			}
		}
		// map iteration order must not decide which relations survive the cut
		sort.SliceStable(strong, func(i, j int) bool {
			if related[strong[i]] != related[strong[j]] {
				return related[strong[i]] > related[strong[j]]
			}
			return strong[i] < strong[j]
		})
		if len(strong) > 5 {
			strong = strong[:5]
		}
		if len(strong) > 0 {
			t.related[word] = strong
		}
	}
}

// Related returns the known synonyms for a request term.
func (t *Taxonomy) Related(term string) []string {
	return t.related[strings.ToLower(strings.TrimSpace(term))]
}

// VibesForType returns the vibes learned for a venue type, falling back to
// partial type-name matches.
func (t *Taxonomy) VibesForType(venueType string) []string {
	lower := strings.ToLower(strings.TrimSpace(venueType))
	if lower == "" {
		return nil
	}
	if vibes, ok := t.typeVibes[lower]; ok {
		return vibes
	}
	for known, vibes := range t.typeVibes {
		if strings.Contains(lower, known) || strings.Contains(known, lower) {
			return vibes
		}
	}
	return nil
}

// MatchesType reports whether a venue satisfies what the user asked for: a
// direct text match over the type fields and name, a boolean feature column,
// a cuisine suffix root ("italian" -> "ital"), or a learned related term.
func (t *Taxonomy) MatchesType(v types.Venue, target string) bool {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return false
	}

	name := strings.ToLower(v.Name)
	searchable := strings.ToLower(strings.Join([]string{
		v.PrimaryType, v.AllTypes, v.Name, v.DisplayTypeName,
	}, " "))

	if strings.Contains(searchable, target) {
		return true
	}

	if check, ok := servedColumns[target]; ok && check(v) {
		return true
	}
	if check, ok := featureColumns[target]; ok && check(v.Features()) {
		return true
	}

	// cuisine root matching so "Ciao Italia" satisfies "italian"
	if root, ok := cuisineRoot(target); ok && strings.Contains(searchable, root) {
		return true
	}
	if strings.HasPrefix(target, "ital") && strings.Contains(name, "ital") {
		return true
	}
	if strings.HasPrefix(target, "french") &&
		(strings.Contains(name, "french") || strings.Contains(name, "france") || strings.Contains(name, "paris")) {
		return true
	}
	if strings.HasPrefix(target, "japan") &&
		(strings.Contains(name, "japan") || strings.Contains(name, "tokyo")) {
		return true
	}

	for _, rel := range t.related[target] {
		if strings.Contains(searchable, rel) {
			return true
		}
	}
	return false
}

// MatchAny returns the first target the venue satisfies.
func (t *Taxonomy) MatchAny(v types.Venue, targets []string) (string, bool) {
	for _, target := range targets {
		if t.MatchesType(v, target) {
			return target, true
		}
	}
	return "", false
}

// IsCuisineTarget reports whether the target names a specific cuisine.
func (t *Taxonomy) IsCuisineTarget(target string) bool {
	target = strings.ToLower(target)
	for _, kw := range cuisineKeywords {
		if strings.Contains(target, kw) {
			return true
		}
	}
	return false
}

// Cuisine returns the cuisine of a restaurant-like venue, or "" if none is
// recognizable. The primary type wins over the noisier all_types field.
func (t *Taxonomy) Cuisine(v types.Venue) string {
	primary := strings.ToLower(v.PrimaryType)
	for _, c := range cuisineKeywords {
		if strings.Contains(primary, c) {
			return c
		}
	}
	all := strings.ToLower(v.AllTypes)
	for _, c := range cuisineKeywords {
		if strings.Contains(all, c) {
			return c
		}
	}
	return ""
}

// cuisineRoot strips demonym suffixes: italian -> ital, japanese -> japan,
// spanish -> span. Roots shorter than four characters match too loosely.
func cuisineRoot(target string) (string, bool) {
	var root string
	switch {
	case strings.HasSuffix(target, "ese"):
		root = target[:len(target)-3]
	case strings.HasSuffix(target, "an"):
		root = target[:len(target)-2]
	case strings.HasSuffix(target, "ish"):
		root = target[:len(target)-3]
	default:
		return "", false
	}
	if len(root) < 4 {
		return "", false
	}
	return root, true
}
