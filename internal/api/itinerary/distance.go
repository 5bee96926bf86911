package itinerary

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/patrickmn/go-cache"
)

const earthRadiusKm = 6371.0

// haversineKm is the great-circle distance between two points in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusKm
}

// distanceCache memoizes pairwise distances for the lifetime of one planning
// call. Keys round coordinates to four decimals (~11m), plenty for scoring.
// The underlying cache is safe for the concurrent fitness evaluations within
// a generation; the cache itself is never shared across planning calls.
type distanceCache struct {
	entries *cache.Cache
}

func newDistanceCache() *distanceCache {
	return &distanceCache{entries: cache.New(cache.NoExpiration, 0)}
}

func (d *distanceCache) between(lat1, lon1, lat2, lon2 float64) float64 {
	key := fmt.Sprintf("%.4f,%.4f:%.4f,%.4f", lat1, lon1, lat2, lon2)
	if cached, ok := d.entries.Get(key); ok {
		return cached.(float64)
	}
	dist := haversineKm(lat1, lon1, lat2, lon2)
	d.entries.Set(key, dist, cache.NoExpiration)
	return dist
}
