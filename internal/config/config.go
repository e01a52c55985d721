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
	Server      ServerConfig
	Log         LogConfig
	Geocoding   GeocodingConfig
	Google      GoogleConfig
	Weather     WeatherConfig
	Attractions AttractionsConfig
	Retry       RetryConfig
	Request     RequestConfig
	Trace       TraceConfig
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

// GeocodingConfig configures the place name lookup
type GeocodingConfig struct {
	Provider     string // nominatim, google
	BaseURL      string
	UserAgent    string
	Timeout      time.Duration
	RateLimit    float64 // requests per second
	ExtractPlace bool
}

// GoogleConfig holds credentials for the Google Maps geocoder
type GoogleConfig struct {
	APIKey string
}

// WeatherConfig configures the forecast upstream
type WeatherConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AttractionsConfig configures the points of interest upstream
type AttractionsConfig struct {
	BaseURL       string
	Timeout       time.Duration
	MaxSizeBytes  int64 // Overpass server-side memory bound per query
}

// RetryConfig holds the backoff used between fetch attempts
type RetryConfig struct {
	Backoff time.Duration
}

// RequestConfig bounds the handling of a single query
type RequestConfig struct {
	Timeout time.Duration
}

// TraceConfig controls span export
type TraceConfig struct {
	Enabled     bool
	SampleRatio float64 // fraction of root spans kept, 0..1
	Pretty      bool    // indent exported spans
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.trip-agent")

	setDefaults()

	// Read from environment variables, e.g. TRIP_AGENT_GOOGLE_APIKEY
	viper.SetEnvPrefix("TRIP_AGENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("geocoding.provider", "nominatim")
	viper.SetDefault("geocoding.baseurl", "https://nominatim.openstreetmap.org/search")
	viper.SetDefault("geocoding.useragent", "trip-agent/1.0")
	viper.SetDefault("geocoding.timeout", 10*time.Second)
	viper.SetDefault("geocoding.ratelimit", 1.0)
	viper.SetDefault("geocoding.extractplace", false)
	viper.SetDefault("google.apikey", "")

	viper.SetDefault("weather.baseurl", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("weather.timeout", 10*time.Second)

	viper.SetDefault("attractions.baseurl", "https://overpass-api.de/api/interpreter")
	viper.SetDefault("attractions.timeout", 15*time.Second)
	viper.SetDefault("attractions.maxsizebytes", 128<<20)

	viper.SetDefault("retry.backoff", 500*time.Millisecond)
	viper.SetDefault("request.timeout", 30*time.Second)

	viper.SetDefault("trace.enabled", false)
	viper.SetDefault("trace.sampleratio", 1.0)
	viper.SetDefault("trace.pretty", false)
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Geocoding.Provider) {
	case "nominatim":
	case "google":
		if c.Google.APIKey == "" {
			return errors.New("geocoding provider google requires google.apikey")
		}
	default:
		return fmt.Errorf("unknown geocoding provider %q", c.Geocoding.Provider)
	}
	if c.Attractions.MaxSizeBytes <= 0 {
		return fmt.Errorf("attractions.maxsizebytes must be positive, got %d", c.Attractions.MaxSizeBytes)
	}
	if c.Trace.SampleRatio < 0 || c.Trace.SampleRatio > 1 {
		return fmt.Errorf("trace.sampleratio must be between 0 and 1, got %v", c.Trace.SampleRatio)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

// NewStderrLogger is NewLogger for commands whose stdout carries results
func (c *Config) NewStderrLogger() *slog.Logger {
	return c.newLogger(os.Stderr)
}

func (c *Config) newLogger(w *os.File) *slog.Logger {
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

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
