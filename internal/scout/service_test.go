package scout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"coffee-scout/internal/location"
	"coffee-scout/internal/mood"
	"coffee-scout/internal/preference"
	"coffee-scout/internal/providers/overpass"
	"coffee-scout/internal/recommend"
	"coffee-scout/internal/types"
	"coffee-scout/internal/weather"
)

// Mock services for testing

type mockLocationService struct {
	origin *types.SearchOrigin
	err    error
}

func (m *mockLocationService) GetSearchOrigin(_ context.Context, _, _ *float64) (*types.SearchOrigin, error) {
	return m.origin, m.err
}

type mockWeatherService struct {
	snapshot *weather.Snapshot
	err      error
	coords   []types.Coords
}

func (m *mockWeatherService) GetCurrent(_ context.Context, coords types.Coords) (*weather.Snapshot, error) {
	m.coords = append(m.coords, coords)
	return m.snapshot, m.err
}

type mockSearchService struct {
	result   *recommend.ResultSet
	err      error
	contexts []recommend.DecisionContext
}

func (m *mockSearchService) Search(_ context.Context, _ types.Coords, dc recommend.DecisionContext) (*recommend.ResultSet, error) {
	m.contexts = append(m.contexts, dc)
	return m.result, m.err
}

type mockPlaceProvider struct {
	response *overpass.InterpreterAPIResponse
	urls     []string
}

func (m *mockPlaceProvider) Interpret(_ context.Context, requestURL string) (*overpass.InterpreterAPIResponse, error) {
	m.urls = append(m.urls, requestURL)
	return m.response, nil
}

func ptr[T any](v T) *T {
	return &v
}

var (
	testLogger      = slog.New(slog.NewTextHandler(io.Discard, nil))
	defaultLocation = types.NewCoords(37.7749, -122.4194)
	morningUTC      = time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newPreferences() *preference.Preferences {
	return preference.NewPreferences(preference.NewMemoryStore(), testLogger)
}

func TestRecommend_NoLocationNoWeather(t *testing.T) {
	provider := &mockPlaceProvider{response: &overpass.InterpreterAPIResponse{}}
	svc := newScoutService(
		location.NewLocationServiceWithProviders(nil, nil, defaultLocation, testLogger),
		&mockWeatherService{err: errors.New("upstream timeout")},
		recommend.NewSearchServiceWithProvider(provider, overpass.DefaultEndpoint, testLogger),
		newPreferences(),
		fixedClock(morningUTC),
		testLogger,
	)

	rec, err := svc.Recommend(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if rec.Origin.Coordinates != defaultLocation || !rec.Origin.Fallback {
		t.Errorf("Origin = %+v, want fallback to default location", rec.Origin)
	}
	if rec.Weather != nil {
		t.Errorf("Weather = %+v, want nil", rec.Weather)
	}

	want := recommend.DecisionContext{TimeOfDay: recommend.Morning, Mood: mood.Focused}
	if rec.Context != want {
		t.Errorf("Context = %+v, want %+v", rec.Context, want)
	}

	if len(provider.urls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(provider.urls))
	}
	u, err := url.Parse(provider.urls[0])
	if err != nil {
		t.Fatalf("bad request url: %v", err)
	}
	if !strings.Contains(u.Query().Get("data"), "around:1200,37.7749,-122.4194") {
		t.Errorf("query = %q, want it centred on the default location", u.Query().Get("data"))
	}

	if rec.AreaMapURL != "https://www.google.com/maps/search/coffee/@37.7749,-122.4194,16z" {
		t.Errorf("AreaMapURL = %q", rec.AreaMapURL)
	}
	if rec.Headline != "Best focused coffee spots nearby" {
		t.Errorf("Headline = %q", rec.Headline)
	}
	if rec.Summary != "It looks like a morning day" {
		t.Errorf("Summary = %q", rec.Summary)
	}
}

func TestRecommend_LocalHour(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     recommend.TimeOfDay
	}{
		{"unknown zone uses server clock", "", recommend.Morning},
		{"invalid zone uses server clock", "Not/AZone", recommend.Morning},
		{"origin zone", "Asia/Tokyo", recommend.Evening},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := &mockSearchService{result: &recommend.ResultSet{}}
			svc := newScoutService(
				&mockLocationService{origin: &types.SearchOrigin{Coordinates: defaultLocation, Timezone: tt.timezone}},
				&mockWeatherService{},
				search,
				newPreferences(),
				fixedClock(morningUTC),
				testLogger,
			)

			rec, err := svc.Recommend(context.Background(), Request{})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if rec.Context.TimeOfDay != tt.want {
				t.Errorf("TimeOfDay = %q, want %q", rec.Context.TimeOfDay, tt.want)
			}
		})
	}
}

func TestRecommend_Presentation(t *testing.T) {
	search := &mockSearchService{
		result: &recommend.ResultSet{
			Candidates: 2,
			Places: []recommend.Place{
				{
					ID:             1,
					Kind:           "node",
					Tags:           types.Tags{"name": "Ritual Coffee", "wifi": "yes", "cuisine": "coffee_shop"},
					Location:       types.NewCoords(37.7756, -122.4193),
					DistanceMeters: 77.6,
					RankScore:      5,
				},
				{
					ID:             2,
					Kind:           "way",
					Location:       types.NewCoords(37.7760, -122.4200),
					DistanceMeters: 133.2,
				},
			},
		},
	}
	snapshot := &weather.Snapshot{
		Temperature:         ptr(12.5),
		ApparentTemperature: ptr(11.0),
		Precipitation:       ptr(0.4),
		WeatherCode:         ptr(61),
		WindSpeed:           ptr(9.0),
	}

	svc := newScoutService(
		&mockLocationService{origin: &types.SearchOrigin{Coordinates: defaultLocation}},
		&mockWeatherService{snapshot: snapshot},
		search,
		newPreferences(),
		fixedClock(morningUTC),
		testLogger,
	)

	rec, err := svc.Recommend(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if !rec.Context.IsRain || rec.Context.Wind != 9.0 {
		t.Errorf("Context = %+v, want rain and wind 9", rec.Context)
	}
	if rec.Weather == nil || rec.Weather.Conditions == nil || rec.Weather.Conditions.Code != 61 {
		t.Errorf("Weather = %+v, want conditions for code 61", rec.Weather)
	}
	if len(rec.Badges) != 1 || rec.Badges[0] != "Calm" {
		t.Errorf("Badges = %v, want [Calm]", rec.Badges)
	}

	if len(rec.Places) != 2 {
		t.Fatalf("len(Places) = %d, want 2", len(rec.Places))
	}

	first := rec.Places[0]
	if first.Name != "Ritual Coffee" || first.Description != "coffee_shop" {
		t.Errorf("first = %q / %q", first.Name, first.Description)
	}
	if first.DistanceMeters != 78 {
		t.Errorf("first.DistanceMeters = %d, want 78", first.DistanceMeters)
	}
	if first.MapURL != "https://www.google.com/maps/search/?api=1&query=37.7756,-122.4193" {
		t.Errorf("first.MapURL = %q", first.MapURL)
	}
	if len(first.Reasons) != 2 || first.Reasons[0] != "coffee-name" || first.Reasons[1] != "focused-wifi" {
		t.Errorf("first.Reasons = %v", first.Reasons)
	}

	second := rec.Places[1]
	if second.Name != DefaultPlaceName || second.Description != DefaultPlaceDescription {
		t.Errorf("second = %q / %q, want defaults", second.Name, second.Description)
	}
	if second.DistanceMeters != 133 {
		t.Errorf("second.DistanceMeters = %d, want 133", second.DistanceMeters)
	}
}

func TestRecommend_Mood(t *testing.T) {
	prefs := newPreferences()
	search := &mockSearchService{result: &recommend.ResultSet{}}
	svc := newScoutService(
		&mockLocationService{origin: &types.SearchOrigin{Coordinates: defaultLocation}},
		&mockWeatherService{},
		search,
		prefs,
		fixedClock(morningUTC),
		testLogger,
	)
	ctx := context.Background()

	if _, err := svc.Recommend(ctx, Request{Mood: ptr(mood.Social)}); err != nil {
		t.Fatalf("Recommend(social) error = %v", err)
	}
	if got := prefs.Mood(ctx); got != mood.Social {
		t.Errorf("persisted mood = %q, want social", got)
	}

	if _, err := svc.Recommend(ctx, Request{}); err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := search.contexts[1].Mood; got != mood.Social {
		t.Errorf("second search mood = %q, want remembered social", got)
	}
}

func TestRecommend_Errors(t *testing.T) {
	tests := []struct {
		name     string
		location *mockLocationService
		search   *mockSearchService
		wantErr  error
	}{
		{
			name:     "invalid latitude",
			location: &mockLocationService{err: location.ErrInvalidLatitude},
			search:   &mockSearchService{},
			wantErr:  location.ErrInvalidLatitude,
		},
		{
			name:     "search unavailable",
			location: &mockLocationService{origin: &types.SearchOrigin{Coordinates: defaultLocation}},
			search:   &mockSearchService{err: recommend.ErrSearchUnavailable},
			wantErr:  recommend.ErrSearchUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newScoutService(tt.location, &mockWeatherService{}, tt.search, newPreferences(), fixedClock(morningUTC), testLogger)

			rec, err := svc.Recommend(context.Background(), Request{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Recommend() error = %v, want %v", err, tt.wantErr)
			}
			if rec != nil {
				t.Errorf("Recommend() = %+v, want nil", rec)
			}
			if _, ok := svc.Latest(); ok {
				t.Error("failed search should not be published")
			}
		})
	}
}

func TestRecommend_SequenceAndLatest(t *testing.T) {
	svc := newScoutService(
		&mockLocationService{origin: &types.SearchOrigin{Coordinates: defaultLocation}},
		&mockWeatherService{},
		&mockSearchService{result: &recommend.ResultSet{}},
		newPreferences(),
		fixedClock(morningUTC),
		testLogger,
	)

	var last *Recommendation
	for i := 1; i <= 3; i++ {
		rec, err := svc.Recommend(context.Background(), Request{})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if rec.Sequence != uint64(i) {
			t.Errorf("Sequence = %d, want %d", rec.Sequence, i)
		}
		if last != nil && rec.SearchID == last.SearchID {
			t.Error("search ids should be unique")
		}
		last = rec
	}

	latest, ok := svc.Latest()
	if !ok || latest != last {
		t.Errorf("Latest() = %+v, want the third recommendation", latest)
	}
}
