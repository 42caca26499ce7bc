package types

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
)

// Coords is a latitude/longitude pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// NewCoordsFromPoint converts an orb point, which is ordered [lon, lat].
func NewCoordsFromPoint(p orb.Point) Coords {
	return NewCoords(p.Lat(), p.Lon())
}

// Point returns the coordinates as an orb point.
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// LatitudeInRange reports whether the latitude lies within -90..90.
func (c Coords) LatitudeInRange() bool {
	return c.Latitude >= -90 && c.Latitude <= 90
}

// LongitudeInRange reports whether the longitude lies within -180..180.
func (c Coords) LongitudeInRange() bool {
	return c.Longitude >= -180 && c.Longitude <= 180
}

// String formats the pair as "lat,lon" using the shortest exact decimal form.
func (c Coords) String() string {
	return fmt.Sprintf("%s,%s", formatDegrees(c.Latitude), formatDegrees(c.Longitude))
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
