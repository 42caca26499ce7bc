package recommend

import (
	"coffee-scout/internal/types"
)

// Place is a candidate venue. Location is always resolved; DistanceMeters
// and RankScore are filled in by the search before ranking.
type Place struct {
	ID             int64        `json:"id"`
	Kind           string       `json:"kind"`
	Tags           types.Tags   `json:"tags"`
	Location       types.Coords `json:"location"`
	DistanceMeters float64      `json:"distanceMeters"`
	RankScore      int          `json:"rankScore"`
}

// Name returns the venue's name tag, or "" when it has none.
func (p Place) Name() string {
	return p.Tags.Get("name")
}
