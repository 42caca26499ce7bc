package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"coffee-scout/internal/types"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name      string
		a         types.Coords
		b         types.Coords
		want      float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.NewCoords(37.7749, -122.4194),
			b:         types.NewCoords(37.7749, -122.4194),
			want:      0,
			tolerance: 0,
		},
		{
			name:      "one degree of latitude",
			a:         types.NewCoords(0, 0),
			b:         types.NewCoords(1, 0),
			want:      EarthRadiusMeters * math.Pi / 180,
			tolerance: 0.001,
		},
		{
			name:      "San Francisco to Oakland",
			a:         types.NewCoords(37.7749, -122.4194),
			b:         types.NewCoords(37.8044, -122.2712),
			want:      13400,
			tolerance: 200,
		},
		{
			name:      "antipodal points",
			a:         types.NewCoords(0, 0),
			b:         types.NewCoords(0, 180),
			want:      EarthRadiusMeters * math.Pi,
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Distance() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	points := []types.Coords{
		types.NewCoords(37.7749, -122.4194),
		types.NewCoords(-33.8688, 151.2093),
		types.NewCoords(51.5074, -0.1278),
		types.NewCoords(89.9, 45),
		types.NewCoords(-89.9, -135),
	}

	for _, a := range points {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%v, %v) = %v, want 0", a, a, d)
		}
		for _, b := range points {
			if Distance(a, b) != Distance(b, a) {
				t.Errorf("Distance(%v, %v) = %v but Distance(%v, %v) = %v",
					a, b, Distance(a, b), b, a, Distance(b, a))
			}
		}
	}
}

func TestBoundCenter(t *testing.T) {
	b := orb.Bound{Min: orb.Point{-122.42, 37.77}, Max: orb.Point{-122.40, 37.79}}

	got := BoundCenter(b)
	if math.Abs(got.Latitude-37.78) > 1e-9 {
		t.Errorf("Latitude = %v, want 37.78", got.Latitude)
	}
	if math.Abs(got.Longitude-(-122.41)) > 1e-9 {
		t.Errorf("Longitude = %v, want -122.41", got.Longitude)
	}
}
