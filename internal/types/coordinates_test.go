package types

import "testing"

func TestCoords_String(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		want   string
	}{
		{"default location", NewCoords(37.7749, -122.4194), "37.7749,-122.4194"},
		{"integers", NewCoords(1, 2), "1,2"},
		{"origin", NewCoords(0, 0), "0,0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCoords_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		latOK  bool
		lonOK  bool
	}{
		{"valid", NewCoords(37.7749, -122.4194), true, true},
		{"poles and antimeridian", NewCoords(-90, 180), true, true},
		{"latitude too large", NewCoords(90.1, 0), false, true},
		{"longitude too small", NewCoords(0, -180.5), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.LatitudeInRange(); got != tt.latOK {
				t.Errorf("LatitudeInRange() = %v, want %v", got, tt.latOK)
			}
			if got := tt.coords.LongitudeInRange(); got != tt.lonOK {
				t.Errorf("LongitudeInRange() = %v, want %v", got, tt.lonOK)
			}
		})
	}
}

func TestCoords_PointRoundTrip(t *testing.T) {
	c := NewCoords(37.7749, -122.4194)
	p := c.Point()
	if p[0] != c.Longitude || p[1] != c.Latitude {
		t.Fatalf("Point() = %v, want [lon lat]", p)
	}
	if got := NewCoordsFromPoint(p); got != c {
		t.Errorf("NewCoordsFromPoint() = %v, want %v", got, c)
	}
}

func TestWeatherCode_Description(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{63, "Rainfall: Moderate intensity"},
		{1000, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := NewWeather(tt.code).Description; got != tt.want {
				t.Errorf("NewWeather(%d).Description = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
