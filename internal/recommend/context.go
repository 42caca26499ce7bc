package recommend

import (
	"fmt"
	"strings"

	"coffee-scout/internal/mood"
	"coffee-scout/internal/weather"
)

// TimeOfDay buckets the local wall-clock hour.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

const (
	// RainThresholdMM is the precipitation above which it counts as raining.
	RainThresholdMM = 0.1
	// HotThresholdC is the apparent temperature above which it counts as hot.
	HotThresholdC = 28.0
	// DefaultApparentTemperatureC stands in when no reading is available.
	DefaultApparentTemperatureC = 20.0
)

// DecisionContext is the normalised input every scoring rule reads.
type DecisionContext struct {
	TimeOfDay TimeOfDay `json:"timeOfDay"`
	IsRain    bool      `json:"isRain"`
	IsHot     bool      `json:"isHot"`
	Wind      float64   `json:"wind"`
	Mood      mood.Mood `json:"mood"`
}

// TimeOfDayForHour maps an hour in 0..23 to its bucket.
func TimeOfDayForHour(hour int) TimeOfDay {
	switch {
	case hour < 11:
		return Morning
	case hour < 17:
		return Afternoon
	default:
		return Evening
	}
}

// DeriveContext combines the local hour, an optional weather snapshot and
// the mood. Missing weather, or missing fields within it, fall back to
// dry, mild and calm.
func DeriveContext(hour int, w *weather.Snapshot, m mood.Mood) DecisionContext {
	precipitation := 0.0
	apparent := DefaultApparentTemperatureC
	wind := 0.0

	if w != nil {
		if w.Precipitation != nil {
			precipitation = *w.Precipitation
		}
		if w.ApparentTemperature != nil {
			apparent = *w.ApparentTemperature
		}
		if w.WindSpeed != nil {
			wind = *w.WindSpeed
		}
	}

	return DecisionContext{
		TimeOfDay: TimeOfDayForHour(hour),
		IsRain:    precipitation > RainThresholdMM,
		IsHot:     apparent > HotThresholdC,
		Wind:      wind,
		Mood:      m,
	}
}

// Headline is the title shown above the results.
func (dc DecisionContext) Headline() string {
	return fmt.Sprintf("Best %s coffee spots nearby", dc.Mood)
}

// Summary describes the conditions, e.g. "It looks like a morning and rainy day".
func (dc DecisionContext) Summary() string {
	pieces := []string{string(dc.TimeOfDay)}
	if dc.IsRain {
		pieces = append(pieces, "rainy")
	}
	if dc.IsHot {
		pieces = append(pieces, "hot")
	}
	return fmt.Sprintf("It looks like a %s day", strings.Join(pieces, " and "))
}
