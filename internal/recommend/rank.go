package recommend

import (
	"cmp"
	"slices"
)

// MaxResults bounds the ranked result set.
const MaxResults = 10

// Rank orders places by RankScore descending, then DistanceMeters ascending,
// and keeps at most limit of them (never more than MaxResults). Scores and
// distances must already be set; the input slice is not modified.
func Rank(places []Place, limit int) []Place {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}

	ranked := slices.Clone(places)
	slices.SortStableFunc(ranked, func(a, b Place) int {
		if c := cmp.Compare(b.RankScore, a.RankScore); c != 0 {
			return c
		}
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
