package openmeteo

type CurrentAPIResponse struct {
	Latitude             float64       `json:"latitude"`
	Longitude            float64       `json:"longitude"`
	GenerationtimeMs     float64       `json:"generationtime_ms"`
	UtcOffsetSeconds     int           `json:"utc_offset_seconds"`
	Timezone             string        `json:"timezone"`
	TimezoneAbbreviation string        `json:"timezone_abbreviation"`
	Elevation            float64       `json:"elevation"`
	CurrentUnits         CurrentUnits  `json:"current_units"`
	Current              *CurrentBlock `json:"current"`
}

type CurrentUnits struct {
	Time                string `json:"time"`
	Temperature2M       string `json:"temperature_2m"`
	ApparentTemperature string `json:"apparent_temperature"`
	Precipitation       string `json:"precipitation"`
	WeatherCode         string `json:"weather_code"`
	WindSpeed10M        string `json:"wind_speed_10m"`
}

// CurrentBlock holds the requested current values. Any of them may be
// missing, so they are pointers.
type CurrentBlock struct {
	Time                string   `json:"time"`
	Interval            int      `json:"interval"`
	Temperature2M       *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	Precipitation       *float64 `json:"precipitation"`
	WeatherCode         *int     `json:"weather_code"`
	WindSpeed10M        *float64 `json:"wind_speed_10m"`
}
