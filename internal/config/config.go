package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Geocoder GeocoderConfig
	Timezone TimezoneConfig
	SunData  SunDataConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// GeocoderConfig configures the forward geocoding provider
type GeocoderConfig struct {
	BaseURL string
	APIKey  string // optional, sent as api_key when set
}

// TimezoneConfig configures timezone resolution
type TimezoneConfig struct {
	BaseURL       string
	APIKey        string
	Fallback      string // zone used whenever the lookup fails
	OfflineLookup bool   // consult the built-in tzf polygons before Fallback
}

// SunDataConfig configures the sunrise/sunset provider
type SunDataConfig struct {
	BaseURL string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// A .env file is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.sunwatch")

	setDefaults(v)

	// Read from environment variables, e.g. SUNWATCH_TIMEZONE_APIKEY
	v.SetEnvPrefix("SUNWATCH")
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("geocoder.baseURL", "https://geocode.maps.co")
	v.SetDefault("geocoder.apiKey", "")
	v.SetDefault("timezone.baseURL", "https://api.timezonedb.com/v2.1")
	v.SetDefault("timezone.apiKey", "")
	v.SetDefault("timezone.fallback", "UTC")
	v.SetDefault("timezone.offlineLookup", false)
	v.SetDefault("sundata.baseURL", "https://api.sunrisesunset.io")
}

// Validate checks values that would make the pipeline issue malformed requests
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Timezone.Fallback) == "" {
		return errors.New("timezone fallback must not be empty")
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
