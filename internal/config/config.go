package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Search     SearchConfig
	Providers  ProvidersConfig
	Preference PreferenceConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// SearchConfig holds the location substituted when the caller cannot
// supply coordinates.
type SearchConfig struct {
	DefaultLatitude  float64
	DefaultLongitude float64
}

// ProvidersConfig holds settings for the upstream HTTP services
type ProvidersConfig struct {
	UserAgent string
	OpenMeteo ProviderConfig
	Overpass  ProviderConfig
	Nominatim ProviderConfig
}

// ProviderConfig configures a single upstream service
type ProviderConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PreferenceConfig selects where the last chosen mood is persisted
type PreferenceConfig struct {
	Backend    string // memory, sqlite, valkey
	Key        string
	SQLitePath string
	ValkeyAddr string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.coffee-scout")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("search.defaultLatitude", 37.7749)
	v.SetDefault("search.defaultLongitude", -122.4194)
	v.SetDefault("providers.userAgent", "coffee-scout/1.0")
	v.SetDefault("providers.openMeteo.baseURL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("providers.openMeteo.timeout", 10*time.Second)
	v.SetDefault("providers.overpass.baseURL", "https://overpass-api.de/api/interpreter")
	v.SetDefault("providers.overpass.timeout", 15*time.Second)
	v.SetDefault("providers.nominatim.baseURL", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("providers.nominatim.timeout", 8*time.Second)
	v.SetDefault("preference.backend", "sqlite")
	v.SetDefault("preference.key", "coffee_scout_state_v1")
	v.SetDefault("preference.sqlitePath", "coffee-scout.db")
	v.SetDefault("preference.valkeyAddr", "127.0.0.1:6379")

	// Read from environment variables, e.g. COFFEE_SCOUT_SERVER_PORT
	v.SetEnvPrefix("COFFEE_SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Search.DefaultLatitude < -90 || c.Search.DefaultLatitude > 90 {
		return fmt.Errorf("search.defaultLatitude %v out of range", c.Search.DefaultLatitude)
	}
	if c.Search.DefaultLongitude < -180 || c.Search.DefaultLongitude > 180 {
		return fmt.Errorf("search.defaultLongitude %v out of range", c.Search.DefaultLongitude)
	}
	switch strings.ToLower(c.Preference.Backend) {
	case "memory", "sqlite", "valkey":
	default:
		return fmt.Errorf("unsupported preference.backend %q", c.Preference.Backend)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
