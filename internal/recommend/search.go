package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"coffee-scout/internal/config"
	"coffee-scout/internal/geo"
	"coffee-scout/internal/metrics"
	"coffee-scout/internal/providers/overpass"
	"coffee-scout/internal/types"
)

// ErrSearchUnavailable means the place search could not produce a candidate
// list. Callers decide whether to offer a retry.
var ErrSearchUnavailable = errors.New("place search unavailable")

// PlaceProviderName labels Overpass calls in provider metrics.
const PlaceProviderName = "overpass"

// PlaceProvider executes an interpreter request.
type PlaceProvider interface {
	Interpret(ctx context.Context, requestURL string) (*overpass.InterpreterAPIResponse, error)
}

// Service runs the candidate pipeline for an origin and context.
type Service interface {
	Search(ctx context.Context, origin types.Coords, dc DecisionContext) (*ResultSet, error)
}

// ResultSet is the ranked output of one search.
type ResultSet struct {
	Query      Query   `json:"-"`
	Candidates int     `json:"candidates"`
	Dropped    int     `json:"dropped"`
	Places     []Place `json:"places"`
}

type searchService struct {
	provider PlaceProvider
	builder  QueryBuilder
	logger   *slog.Logger
}

func NewSearchService(cfg *config.Config, logger *slog.Logger) Service {
	client := overpass.NewClient(cfg.Providers.UserAgent, cfg.Providers.Overpass.Timeout)
	return NewSearchServiceWithProvider(client, cfg.Providers.Overpass.BaseURL, logger)
}

func NewSearchServiceWithProvider(provider PlaceProvider, endpoint string, logger *slog.Logger) Service {
	return &searchService{
		provider: provider,
		builder:  QueryBuilder{Endpoint: endpoint},
		logger:   logger.With("component", "search-service"),
	}
}

// Search builds the query, fetches candidates, attaches distance and score
// to every candidate, and only then ranks them.
func (s *searchService) Search(ctx context.Context, origin types.Coords, dc DecisionContext) (*ResultSet, error) {
	q := s.builder.Build(origin, dc)

	start := time.Now()
	resp, err := s.provider.Interpret(ctx, q.URL())
	metrics.ObserveProvider(PlaceProviderName, start, err)
	if err != nil {
		s.logger.Error("place search failed",
			"latitude", origin.Latitude,
			"longitude", origin.Longitude,
			"mood", dc.Mood,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", ErrSearchUnavailable)
	}

	places := make([]Place, 0, len(resp.Elements))
	dropped := resp.Malformed
	if resp.Malformed > 0 {
		s.logger.Warn("dropping candidates that could not be decoded", "count", resp.Malformed)
	}
	for _, e := range resp.Elements {
		loc, ok := e.Location()
		if !ok {
			dropped++
			s.logger.Warn("dropping candidate without location", "type", e.Type, "id", e.Id)
			continue
		}
		places = append(places, Place{
			ID:             e.Id,
			Kind:           e.Type,
			Tags:           e.Tags,
			Location:       loc,
			DistanceMeters: geo.Distance(origin, loc),
			RankScore:      Score(e.Tags, dc),
		})
	}

	ranked := Rank(places, MaxResults)

	s.logger.Debug("ranked candidates",
		"candidates", len(places),
		"dropped", dropped,
		"returned", len(ranked),
		"duration", time.Since(start),
	)

	return &ResultSet{
		Query:      q,
		Candidates: len(places),
		Dropped:    dropped,
		Places:     ranked,
	}, nil
}
