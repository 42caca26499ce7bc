package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"coffee-scout/internal/config"
	"coffee-scout/internal/metrics"
	"coffee-scout/internal/providers/openstreetmap"
	"coffee-scout/internal/timezone"
	"coffee-scout/internal/types"
)

var (
	ErrInvalidLatitude       = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude      = errors.New("longitude must be between -180 and 180")
	ErrIncompleteCoordinates = errors.New("latitude and longitude must be supplied together")
)

// ReverseGeocodeProviderName labels Nominatim calls in provider metrics.
const ReverseGeocodeProviderName = "nominatim"

// Service resolves where a search is centred
type Service interface {
	// GetSearchOrigin resolves optional caller coordinates into a search
	// origin, substituting the default location when none are supplied.
	GetSearchOrigin(ctx context.Context, latitude, longitude *float64) (*types.SearchOrigin, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// TimezoneProvider names the IANA zone at a coordinate
type TimezoneProvider interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// locationService implements the Service interface
type locationService struct {
	locationProvider ReverseGeocodeProvider
	timezoneProvider TimezoneProvider
	defaultLocation  types.Coords
	logger           *slog.Logger
}

// NewLocationService creates a new location service with real provider clients.
// A timezone finder that fails to load only disables local-time lookup.
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	var tz TimezoneProvider
	if svc, err := timezone.NewService(); err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
	} else {
		tz = svc
	}

	return NewLocationServiceWithProviders(
		openstreetmap.NewClient(cfg.Providers.Nominatim.BaseURL, cfg.Providers.UserAgent, cfg.Providers.Nominatim.Timeout),
		tz,
		types.NewCoords(cfg.Search.DefaultLatitude, cfg.Search.DefaultLongitude),
		logger,
	)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	locationProvider ReverseGeocodeProvider,
	timezoneProvider TimezoneProvider,
	defaultLocation types.Coords,
	logger *slog.Logger,
) Service {
	return &locationService{
		locationProvider: locationProvider,
		timezoneProvider: timezoneProvider,
		defaultLocation:  defaultLocation,
		logger:           logger.With("component", "location-service"),
	}
}

// GetSearchOrigin validates the coordinates, then looks up the area label and
// timezone in parallel. Neither lookup can fail the request.
func (s *locationService) GetSearchOrigin(ctx context.Context, latitude, longitude *float64) (*types.SearchOrigin, error) {
	coords, fallback, err := s.resolveCoords(latitude, longitude)
	if err != nil {
		return nil, err
	}

	var (
		wg           sync.WaitGroup
		locationResp *openstreetmap.LookupAPIResponse
		locationErr  error
		tz           string
		tzErr        error
	)

	if s.locationProvider != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			locationResp, locationErr = s.locationProvider.Lookup(ctx, coords.Latitude, coords.Longitude)
			metrics.ObserveProvider(ReverseGeocodeProviderName, start, locationErr)
		}()
	}

	if s.timezoneProvider != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tz, tzErr = s.timezoneProvider.GetTimezone(coords.Latitude, coords.Longitude)
		}()
	}

	wg.Wait()

	if locationErr != nil {
		s.logger.Warn("reverse geocode failed, continuing without area label",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", locationErr,
		)
	}
	if tzErr != nil {
		s.logger.Warn("timezone lookup failed, using server clock zone",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", tzErr,
		)
		tz = ""
	}

	return &types.SearchOrigin{
		Coordinates: coords,
		Location:    s.translateLocationInfo(locationResp),
		Timezone:    tz,
		Fallback:    fallback,
	}, nil
}

func (s *locationService) resolveCoords(latitude, longitude *float64) (types.Coords, bool, error) {
	if latitude == nil && longitude == nil {
		s.logger.Debug("no coordinates supplied, using default location",
			"latitude", s.defaultLocation.Latitude,
			"longitude", s.defaultLocation.Longitude,
		)
		return s.defaultLocation, true, nil
	}
	if latitude == nil || longitude == nil {
		return types.Coords{}, false, ErrIncompleteCoordinates
	}

	coords := types.NewCoords(*latitude, *longitude)
	if !coords.LatitudeInRange() {
		return types.Coords{}, false, fmt.Errorf("%w: got %v", ErrInvalidLatitude, *latitude)
	}
	if !coords.LongitudeInRange() {
		return types.Coords{}, false, fmt.Errorf("%w: got %v", ErrInvalidLongitude, *longitude)
	}
	return coords, false, nil
}

// translateLocationInfo converts an OpenStreetMap reverse lookup response to domain LocationInfo type
func (s *locationService) translateLocationInfo(resp *openstreetmap.LookupAPIResponse) types.LocationInfo {
	if resp == nil {
		return types.LocationInfo{}
	}

	// Prefer the neighbourhood over the full display name
	name := resp.Address.Area()
	if name == "" {
		name = resp.Name
	}
	if name == "" {
		name = resp.DisplayName
	}

	return types.LocationInfo{
		Name:        name,
		City:        resp.Address.Locality(),
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}
}
