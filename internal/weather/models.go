package weather

import (
	"coffee-scout/internal/types"
)

// Snapshot is the current conditions at a point. Every field is optional:
// a provider may omit any of them.
type Snapshot struct {
	Temperature         *float64 `json:"temperature,omitempty"`         // °C
	ApparentTemperature *float64 `json:"apparentTemperature,omitempty"` // °C
	Precipitation       *float64 `json:"precipitation,omitempty"`       // mm
	WeatherCode         *int     `json:"weatherCode,omitempty"`         // WMO code
	WindSpeed           *float64 `json:"windSpeed,omitempty"`           // km/h
}

// Conditions describes the WMO weather code, or nil when it is unknown.
func (s *Snapshot) Conditions() *types.Weather {
	if s == nil || s.WeatherCode == nil {
		return nil
	}
	w := types.NewWeather(*s.WeatherCode)
	return &w
}

// FeelsLike returns the apparent temperature in both units, or nil.
func (s *Snapshot) FeelsLike() *types.Temperature {
	if s == nil || s.ApparentTemperature == nil {
		return nil
	}
	t := types.NewTemperatureFromCelsius(*s.ApparentTemperature)
	return &t
}

// Wind returns the wind speed in both units, or nil.
func (s *Snapshot) Wind() *types.Wind {
	if s == nil || s.WindSpeed == nil {
		return nil
	}
	w := types.NewWindFromKph(*s.WindSpeed)
	return &w
}
