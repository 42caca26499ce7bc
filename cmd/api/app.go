package main

import (
	"log/slog"

	"coffee-scout/internal/config"
	"coffee-scout/internal/location"
	"coffee-scout/internal/metrics"
	"coffee-scout/internal/preference"
	"coffee-scout/internal/recommend"
	"coffee-scout/internal/scout"
	"coffee-scout/internal/weather"

	"github.com/gin-gonic/gin"

	_ "coffee-scout/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	scoutService scout.Service
	preferences  *preference.Preferences
	store        preference.Store
	cfg          *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Open the mood preference store
	store, err := preference.Open(cfg)
	if err != nil {
		return nil, err
	}
	preferences := preference.NewPreferences(store, logger)

	scoutSvc := scout.NewScoutService(
		location.NewLocationService(cfg, logger),
		weather.NewWeatherService(cfg, logger),
		recommend.NewSearchService(cfg, logger),
		preferences,
		logger,
	)

	app := NewAppWithServices(cfg, logger, scoutSvc, preferences)
	app.store = store

	logger.Info("application initialized")

	return app, nil
}

// NewAppWithServices creates an application around existing services
// This is useful for testing with mock services
func NewAppWithServices(cfg *config.Config, logger *slog.Logger, scoutSvc scout.Service, preferences *preference.Preferences) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())

	app := &App{
		router:       router,
		logger:       logger,
		scoutService: scoutSvc,
		preferences:  preferences,
		cfg:          cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close releases the preference store
func (app *App) Close() {
	if app.store == nil {
		return
	}
	if err := app.store.Close(); err != nil {
		app.logger.Warn("failed to close preference store", "error", err)
	}
}
