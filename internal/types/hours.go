package types

import (
	"encoding/json"
	"time"
)

type openingPeriods struct {
	Periods []struct {
		Open  periodPoint  `json:"open"`
		Close *periodPoint `json:"close,omitempty"`
	} `json:"periods"`
}

type periodPoint struct {
	Day    int `json:"day"` // Google numbering: 0=Sunday .. 6=Saturday
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// OpenAt reports whether the venue is open at the given time, based on the
// Google Places periods JSON. Missing or malformed hours count as open: better
// to show a venue than to hide it on bad data.
func (v Venue) OpenAt(t time.Time) bool {
	if v.OpeningHours == "" {
		return true
	}

	var hours openingPeriods
	if err := json.Unmarshal([]byte(v.OpeningHours), &hours); err != nil {
		return true
	}
	if len(hours.Periods) == 0 {
		return true
	}

	day := int(t.Weekday()) // time.Weekday is Sunday-first, same as Google
	now := t.Hour()*100 + t.Minute()

	for _, p := range hours.Periods {
		openTime := p.Open.Hour*100 + p.Open.Minute

		if p.Close == nil {
			// no close time usually means 24/7
			if p.Open.Day == 0 && openTime == 0 {
				return true
			}
			continue
		}

		closeTime := p.Close.Hour*100 + p.Close.Minute
		switch {
		case p.Open.Day == day && p.Close.Day == day:
			if openTime <= now && now < closeTime {
				return true
			}
		case p.Open.Day == day && p.Close.Day == (day+1)%7:
			// spans midnight, opened today (a bar open until 2am)
			if now >= openTime {
				return true
			}
		case p.Open.Day == (day+6)%7 && p.Close.Day == day:
			// spans midnight, opened yesterday
			if now < closeTime {
				return true
			}
		}
	}
	return false
}
