package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"coffee-scout/internal/config"
	"coffee-scout/internal/metrics"
	"coffee-scout/internal/providers/openmeteo"
	"coffee-scout/internal/types"
)

var ErrMalformedResponse = errors.New("malformed weather response")

// ProviderName labels open-meteo calls in provider metrics.
const ProviderName = "open-meteo"

type CurrentConditionsProvider interface {
	// GetCurrent fetches current conditions for the given latitude and longitude
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openmeteo.CurrentAPIResponse, error)
}

type Service interface {
	GetCurrent(ctx context.Context, coords types.Coords) (*Snapshot, error)
}

type weatherService struct {
	provider CurrentConditionsProvider
	logger   *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	client := openmeteo.NewForecastClient(cfg.Providers.OpenMeteo.BaseURL, cfg.Providers.OpenMeteo.Timeout)
	return NewWeatherServiceWithProvider(client, logger)
}

func NewWeatherServiceWithProvider(provider CurrentConditionsProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

// GetCurrent returns the current conditions at coords. Transport failures
// and responses that cannot be trusted are both returned as errors; deciding
// to carry on without weather is the caller's call.
func (s *weatherService) GetCurrent(ctx context.Context, coords types.Coords) (*Snapshot, error) {
	start := time.Now()
	apiResponse, err := s.provider.GetCurrent(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		metrics.ObserveProvider(ProviderName, start, err)
		return nil, fmt.Errorf("failed to get current conditions: %w", err)
	}

	snapshot, err := mapCurrentAPIResponseToSnapshot(apiResponse)
	metrics.ObserveProvider(ProviderName, start, err)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetched current conditions",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"duration", time.Since(start),
	)
	return snapshot, nil
}

func mapCurrentAPIResponseToSnapshot(apiResponse *openmeteo.CurrentAPIResponse) (*Snapshot, error) {
	if apiResponse == nil || apiResponse.Current == nil {
		return nil, fmt.Errorf("%w: no current conditions", ErrMalformedResponse)
	}
	current := apiResponse.Current

	if current.Precipitation != nil && *current.Precipitation < 0 {
		return nil, fmt.Errorf("%w: negative precipitation %v", ErrMalformedResponse, *current.Precipitation)
	}
	if current.WindSpeed10M != nil && *current.WindSpeed10M < 0 {
		return nil, fmt.Errorf("%w: negative wind speed %v", ErrMalformedResponse, *current.WindSpeed10M)
	}

	return &Snapshot{
		Temperature:         current.Temperature2M,
		ApparentTemperature: current.ApparentTemperature,
		Precipitation:       current.Precipitation,
		WeatherCode:         current.WeatherCode,
		WindSpeed:           current.WindSpeed10M,
	}, nil
}
