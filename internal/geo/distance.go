// Package geo holds the small amount of spherical geometry the search
// pipeline needs.
package geo

import (
	"math"

	"github.com/paulmach/orb"

	"coffee-scout/internal/types"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between a and b
// using the haversine formula.
func Distance(a, b types.Coords) float64 {
	if a == b {
		return 0
	}

	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(math.Min(1, h)))
}

// BoundCenter returns the centre of a bounding box, used as the centroid of
// venues mapped as areas when no explicit centre is supplied.
func BoundCenter(b orb.Bound) types.Coords {
	return types.NewCoordsFromPoint(b.Center())
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
