package scout

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"coffee-scout/internal/location"
	"coffee-scout/internal/maplink"
	"coffee-scout/internal/metrics"
	"coffee-scout/internal/mood"
	"coffee-scout/internal/preference"
	"coffee-scout/internal/recommend"
	"coffee-scout/internal/weather"
)

// Service runs the full recommendation flow: location, weather, then place
// search.
type Service interface {
	Recommend(ctx context.Context, req Request) (*Recommendation, error)
	// Latest returns the newest completed recommendation.
	Latest() (*Recommendation, bool)
}

type scoutService struct {
	locationService location.Service
	weatherService  weather.Service
	searchService   recommend.Service
	preferences     *preference.Preferences
	board           *Board
	sequence        atomic.Uint64
	now             func() time.Time
	logger          *slog.Logger
}

func NewScoutService(
	locationService location.Service,
	weatherService weather.Service,
	searchService recommend.Service,
	preferences *preference.Preferences,
	logger *slog.Logger,
) Service {
	return newScoutService(locationService, weatherService, searchService, preferences, time.Now, logger)
}

func newScoutService(
	locationService location.Service,
	weatherService weather.Service,
	searchService recommend.Service,
	preferences *preference.Preferences,
	now func() time.Time,
	logger *slog.Logger,
) *scoutService {
	return &scoutService{
		locationService: locationService,
		weatherService:  weatherService,
		searchService:   searchService,
		preferences:     preferences,
		board:           &Board{},
		now:             now,
		logger:          logger.With("component", "scout-service"),
	}
}

func (s *scoutService) Latest() (*Recommendation, bool) {
	return s.board.Latest()
}

// Recommend resolves the origin, reads the weather, derives the decision
// context and ranks nearby cafés. Only invalid input and an unavailable
// place search fail the request.
func (s *scoutService) Recommend(ctx context.Context, req Request) (*Recommendation, error) {
	seq := s.sequence.Add(1)
	searchID := uuid.NewString()
	logger := s.logger.With("search_id", searchID, "sequence", seq)

	m := s.resolveMood(ctx, req.Mood, logger)

	origin, err := s.locationService.GetSearchOrigin(ctx, req.Latitude, req.Longitude)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues(string(m), "invalid").Inc()
		return nil, err
	}
	if origin.Fallback {
		metrics.FallbacksTotal.WithLabelValues("location").Inc()
	}

	snapshot, err := s.weatherService.GetCurrent(ctx, origin.Coordinates)
	if err != nil {
		metrics.FallbacksTotal.WithLabelValues("weather").Inc()
		logger.Warn("weather unavailable, deriving context without it",
			"latitude", origin.Coordinates.Latitude,
			"longitude", origin.Coordinates.Longitude,
			"error", err,
		)
		snapshot = nil
	}

	now := s.localTime(origin.Timezone, logger)
	dc := recommend.DeriveContext(now.Hour(), snapshot, m)

	result, err := s.searchService.Search(ctx, origin.Coordinates, dc)
	if err != nil {
		outcome := "error"
		if errors.Is(err, recommend.ErrSearchUnavailable) {
			outcome = "unavailable"
		}
		metrics.SearchesTotal.WithLabelValues(string(m), outcome).Inc()
		return nil, err
	}

	places := make([]RecommendedPlace, 0, len(result.Places))
	for _, p := range result.Places {
		places = append(places, present(p, dc))
	}

	rec := &Recommendation{
		SearchID:    searchID,
		Sequence:    seq,
		GeneratedAt: now,
		Origin:      *origin,
		Weather:     newWeatherReport(snapshot),
		Context:     dc,
		Headline:    dc.Headline(),
		Summary:     dc.Summary(),
		Badges:      m.Badges(),
		AreaMapURL:  maplink.Area(origin.Coordinates),
		Candidates:  result.Candidates,
		Places:      places,
	}

	metrics.SearchesTotal.WithLabelValues(string(m), "ok").Inc()
	metrics.ResultsReturned.Observe(float64(len(places)))

	if !s.board.Publish(rec) {
		logger.Debug("newer recommendation already published, discarding")
	}

	logger.Info("recommendation ready",
		"mood", m,
		"time_of_day", dc.TimeOfDay,
		"is_rain", dc.IsRain,
		"is_hot", dc.IsHot,
		"results", len(places),
	)

	return rec, nil
}

// resolveMood uses the requested mood and remembers it, or falls back to the
// persisted one.
func (s *scoutService) resolveMood(ctx context.Context, requested *mood.Mood, logger *slog.Logger) mood.Mood {
	if requested == nil {
		return s.preferences.Mood(ctx)
	}
	if err := s.preferences.SetMood(ctx, *requested); err != nil {
		logger.Warn("could not remember mood", "mood", *requested, "error", err)
	}
	return *requested
}

// localTime is the current time in the origin's zone, or in the server's
// zone when the origin's is unknown.
func (s *scoutService) localTime(zone string, logger *slog.Logger) time.Time {
	now := s.now()
	if zone == "" {
		metrics.FallbacksTotal.WithLabelValues("timezone").Inc()
		return now
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		metrics.FallbacksTotal.WithLabelValues("timezone").Inc()
		logger.Warn("unknown timezone, using server clock", "timezone", zone, "error", err)
		return now
	}
	return now.In(loc)
}

func present(p recommend.Place, dc recommend.DecisionContext) RecommendedPlace {
	name := p.Name()
	if name == "" {
		name = DefaultPlaceName
	}
	description := p.Tags.Get("cuisine")
	if description == "" {
		description = DefaultPlaceDescription
	}

	return RecommendedPlace{
		ID:             p.ID,
		Kind:           p.Kind,
		Name:           name,
		Description:    description,
		DistanceMeters: int(math.Round(p.DistanceMeters)),
		Score:          p.RankScore,
		Reasons:        recommend.Explain(p.Tags, dc),
		Location:       p.Location,
		MapURL:         maplink.Place(p.Location),
		Tags:           p.Tags,
	}
}
