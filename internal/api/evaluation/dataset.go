package evaluation

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/FACorreiaa/go-date-itinerary/internal/types"
)

// LoadVenuesCSV reads a venue table exported from the upstream database.
// Columns are matched by header name, so partial exports load fine; missing
// optional columns fall back to neutral values.
func LoadVenuesCSV(path string) ([]types.Venue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open venue dataset: %w", err)
	}
	defer f.Close()

	return ReadVenues(f)
}

// ReadVenues parses venue records from CSV data.
func ReadVenues(r io.Reader) ([]types.Venue, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read venue header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["id"]; !ok {
		return nil, fmt.Errorf("venue dataset is missing the id column")
	}

	var venues []types.Venue
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read venue row: %w", err)
		}

		get := func(col string) string {
			if idx, ok := cols[col]; ok && idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
			return ""
		}

		v := types.Venue{
			ID:              get("id"),
			Name:            get("name"),
			Latitude:        parseFloat(get("lat")),
			Longitude:       parseFloat(get("lon")),
			Cost:            parseFloat(get("cost")),
			Rating:          parseFloat(get("rating")),
			ReviewsCount:    parseInt(get("reviews_count")),
			PrimaryType:     get("type"),
			AllTypes:        get("all_types"),
			DisplayTypeName: get("primary_type_display_name"),
			Vibes:           get("true_vibe"),
			Address:         get("address"),
			ShortAddress:    get("short_address"),
			OpeningHours:    get("opening_hours"),

			Reservable:            parseBool(get("reservable")),
			OutdoorSeating:        parseBool(get("outdoor_seating")),
			GoodForChildren:       parseBool(get("good_for_children")),
			GoodForGroups:         parseBool(get("good_for_groups")),
			GoodForWatchingSports: parseBool(get("good_for_watching_sports")),
			LiveMusic:             parseBool(get("live_music")),
			AllowsDogs:            parseBool(get("allows_dogs")),
			ServesVegetarian:      parseBool(get("serves_vegetarian")),
			ServesBreakfast:       parseBool(get("serves_breakfast")),
			ServesBrunch:          parseBool(get("serves_brunch")),
			ServesLunch:           parseBool(get("serves_lunch")),
			ServesDinner:          parseBool(get("serves_dinner")),
			ServesCoffee:          parseBool(get("serves_coffee")),
			ServesDessert:         parseBool(get("serves_dessert")),
			ServesBeer:            parseBool(get("serves_beer")),
			ServesWine:            parseBool(get("serves_wine")),
			ServesCocktails:       parseBool(get("serves_cocktails")),
			Takeout:               parseBool(get("takeout")),
			Delivery:              parseBool(get("delivery")),
			DineIn:                parseBool(get("dine_in")),
		}
		if v.ID == "" {
			continue
		}
		venues = append(venues, v)
	}

	return venues, nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(s string) int {
	// review counts sometimes arrive as "150.0"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
