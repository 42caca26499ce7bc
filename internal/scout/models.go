package scout

import (
	"time"

	"coffee-scout/internal/mood"
	"coffee-scout/internal/recommend"
	"coffee-scout/internal/types"
	"coffee-scout/internal/weather"
)

const (
	// DefaultPlaceName is shown for venues without a name tag.
	DefaultPlaceName = "Coffee place"
	// DefaultPlaceDescription is shown for venues without a cuisine tag.
	DefaultPlaceDescription = "cafe"
)

// Request is one recommendation request. Nil coordinates mean location is
// unavailable; a nil mood means the persisted preference is used.
type Request struct {
	Latitude  *float64
	Longitude *float64
	Mood      *mood.Mood
}

// Recommendation is everything the presentation layer renders for a search.
type Recommendation struct {
	SearchID    string                    `json:"searchId"`
	Sequence    uint64                    `json:"sequence"`
	GeneratedAt time.Time                 `json:"generatedAt"`
	Origin      types.SearchOrigin        `json:"origin"`
	Weather     *WeatherReport            `json:"weather,omitempty"`
	Context     recommend.DecisionContext `json:"context"`
	Headline    string                    `json:"headline"`
	Summary     string                    `json:"summary"`
	Badges      []string                  `json:"badges"`
	AreaMapURL  string                    `json:"areaMapUrl"`
	Candidates  int                       `json:"candidates"`
	Places      []RecommendedPlace        `json:"places"`
}

// WeatherReport is the snapshot the context was derived from, with display
// conversions.
type WeatherReport struct {
	Snapshot   *weather.Snapshot  `json:"snapshot"`
	Conditions *types.Weather     `json:"conditions,omitempty"`
	FeelsLike  *types.Temperature `json:"feelsLike,omitempty"`
	Wind       *types.Wind        `json:"wind,omitempty"`
}

// RecommendedPlace is a ranked venue ready for display.
type RecommendedPlace struct {
	ID             int64        `json:"id"`
	Kind           string       `json:"kind"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	DistanceMeters int          `json:"distanceMeters"`
	Score          int          `json:"score"`
	Reasons        []string     `json:"reasons"`
	Location       types.Coords `json:"location"`
	MapURL         string       `json:"mapUrl"`
	Tags           types.Tags   `json:"tags,omitempty"`
}

func newWeatherReport(s *weather.Snapshot) *WeatherReport {
	if s == nil {
		return nil
	}
	return &WeatherReport{
		Snapshot:   s,
		Conditions: s.Conditions(),
		FeelsLike:  s.FeelsLike(),
		Wind:       s.Wind(),
	}
}
