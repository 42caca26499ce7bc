package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestForecastClient_GetCurrent(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_, _ = w.Write([]byte(`{
			"latitude": 37.78,
			"longitude": -122.42,
			"timezone": "America/Los_Angeles",
			"current_units": {"temperature_2m": "°C", "precipitation": "mm", "wind_speed_10m": "km/h"},
			"current": {
				"time": "2025-01-15T10:30",
				"interval": 900,
				"temperature_2m": 14.2,
				"apparent_temperature": 12.9,
				"precipitation": 0.4,
				"weather_code": 61,
				"wind_speed_10m": 18.5
			}
		}`))
	}))
	defer srv.Close()

	client := NewForecastClient(srv.URL, time.Second)
	resp, err := client.GetCurrent(context.Background(), 37.7749, -122.4194)
	if err != nil {
		t.Fatalf("GetCurrent() unexpected error = %v", err)
	}

	if gotQuery["latitude"] != "37.7749" || gotQuery["longitude"] != "-122.4194" {
		t.Errorf("query coordinates = %s,%s", gotQuery["latitude"], gotQuery["longitude"])
	}
	if gotQuery["current"] != "temperature_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m" {
		t.Errorf("query current = %q", gotQuery["current"])
	}

	if resp.Current == nil {
		t.Fatal("Current block is nil")
	}
	if resp.Current.ApparentTemperature == nil || *resp.Current.ApparentTemperature != 12.9 {
		t.Errorf("ApparentTemperature = %v, want 12.9", resp.Current.ApparentTemperature)
	}
	if resp.Current.WeatherCode == nil || *resp.Current.WeatherCode != 61 {
		t.Errorf("WeatherCode = %v, want 61", resp.Current.WeatherCode)
	}
	if resp.CurrentUnits.WindSpeed10M != "km/h" {
		t.Errorf("WindSpeed10M unit = %q, want km/h", resp.CurrentUnits.WindSpeed10M)
	}
}

func TestForecastClient_GetCurrent_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{"bad request", http.StatusBadRequest, `{"error":true,"reason":"Latitude must be in range"}`, "status 400"},
		{"malformed json", http.StatusOK, `{"current":`, "failed to decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewForecastClient(srv.URL, time.Second).GetCurrent(context.Background(), 0, 0)
			if err == nil {
				t.Fatal("GetCurrent() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("GetCurrent() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}
