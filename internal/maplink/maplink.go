// Package maplink builds map deep links for places and search areas.
package maplink

import (
	"coffee-scout/internal/types"
)

const (
	searchBase = "https://www.google.com/maps/search/"
	areaZoom   = "16z"
)

// Place links to a single point.
func Place(c types.Coords) string {
	return searchBase + "?api=1&query=" + c.String()
}

// Area links to a coffee search centred on c.
func Area(c types.Coords) string {
	return searchBase + "coffee/@" + c.String() + "," + areaZoom
}
