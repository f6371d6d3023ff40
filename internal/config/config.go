package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AbdulWasayUl/go-covid-map/internal/logger"
	"github.com/AbdulWasayUl/go-covid-map/models"
	"github.com/joho/godotenv"
)

const (
	defaultStatsAPIBaseURL = "https://corona.lmao.ninja"
	defaultHTTPAddr        = ":8000"
	defaultCenterLat       = 38.9072
	defaultCenterLng       = -77.0369
	defaultZoom            = 2
	defaultBaseLayer       = "OpenStreetMap"
	defaultLocale          = "en-US"
	defaultTimeZone        = "Local"
	defaultLogLevel        = "info"
)

// Config holds the application configuration
type Config struct {
	StatsAPIBaseURL string
	HTTPAddr        string
	Map             models.MapSettings
	Locale          string
	TimeZone        string
	FetchTimeout    time.Duration
	LogLevel        string
}

// Load reads the .env file if present and builds the configuration from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Deployments pass plain env vars
		logger.Debug("No .env file loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*Config, error) {
	lat, err := floatEnv("MAP_CENTER_LAT", defaultCenterLat)
	if err != nil {
		return nil, err
	}
	lng, err := floatEnv("MAP_CENTER_LNG", defaultCenterLng)
	if err != nil {
		return nil, err
	}
	zoom, err := intEnv("MAP_ZOOM", defaultZoom)
	if err != nil {
		return nil, err
	}
	timeout, err := durationEnv("FETCH_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		StatsAPIBaseURL: strings.TrimRight(stringEnv("STATS_API_BASE_URL", defaultStatsAPIBaseURL), "/"),
		HTTPAddr:        stringEnv("HTTP_ADDR", defaultHTTPAddr),
		Map: models.MapSettings{
			Center:         models.LatLng{Lat: lat, Lng: lng},
			Zoom:           zoom,
			DefaultBaseMap: stringEnv("MAP_BASE_LAYER", defaultBaseLayer),
		},
		Locale:       stringEnv("DISPLAY_LOCALE", defaultLocale),
		TimeZone:     stringEnv("DISPLAY_TIMEZONE", defaultTimeZone),
		FetchTimeout: timeout,
		LogLevel:     stringEnv("LOG_LEVEL", defaultLogLevel),
	}, nil
}

// Location resolves TimeZone, falling back to the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == defaultTimeZone {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func stringEnv(name, def string) string {
	v, found := os.LookupEnv(name)
	if !found || strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func floatEnv(name string, def float64) (float64, error) {
	v := stringEnv(name, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s=%q as float: %w", name, v, err)
	}
	return f, nil
}

func intEnv(name string, def int) (int, error) {
	v := stringEnv(name, "")
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s=%q as int: %w", name, v, err)
	}
	return i, nil
}

func durationEnv(name string, def time.Duration) (time.Duration, error) {
	v := stringEnv(name, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s=%q as duration: %w", name, v, err)
	}
	return d, nil
}
