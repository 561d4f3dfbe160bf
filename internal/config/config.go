package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Default dataset and output file names, relative to their directories.
const (
	SitkaFile            = "sitka_weather_2021_simple.csv"
	DeathValleyFile      = "death_valley_2021_simple.csv"
	EarthquakeFile       = "eq_data_30_day_m1.geojson"
	EarthquakeReadable   = "eq_data_30_day_m1_readable.json"
	EarthquakeMapHTML    = "worldwide_eqs.html"
	SitkaChartBase       = "sitka_highs_lows"
	DeathValleyChartBase = "death_valley_highs_lows"
)

// Config holds all tool settings, populated from environment variables.
type Config struct {
	LogLevel  string
	LogFormat string

	WeatherDataDir    string
	EarthquakeDataDir string
	OutputDir         string

	ChartFormat string
	ChartWidth  int
	ChartHeight int

	// MetricsTextfile is where run metrics are written in Prometheus text
	// format. Empty disables the export.
	MetricsTextfile string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	width, err := parsePositiveInt("CHART_WIDTH", 1280)
	if err != nil {
		return nil, err
	}
	height, err := parsePositiveInt("CHART_HEIGHT", 720)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:          strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:         strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "json")),
		WeatherDataDir:    sharedcfg.EnvOrDefault("WEATHER_DATA_DIR", "weather_data"),
		EarthquakeDataDir: sharedcfg.EnvOrDefault("EQ_DATA_DIR", "eq_data"),
		OutputDir:         sharedcfg.EnvOrDefault("OUTPUT_DIR", "."),
		ChartFormat:       strings.ToLower(sharedcfg.EnvOrDefault("CHART_FORMAT", "png")),
		ChartWidth:        width,
		ChartHeight:       height,
		MetricsTextfile:   sharedcfg.EnvOrDefault("METRICS_TEXTFILE", ""),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (allowed: json, text)", cfg.LogFormat)
	}
	switch cfg.ChartFormat {
	case "png", "svg":
	default:
		return nil, fmt.Errorf("invalid CHART_FORMAT %q (allowed: png, svg)", cfg.ChartFormat)
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}

	return cfg, nil
}

// SitkaPath is the default Sitka CSV input.
func (c *Config) SitkaPath() string {
	return filepath.Join(c.WeatherDataDir, SitkaFile)
}

// DeathValleyPath is the default Death Valley CSV input.
func (c *Config) DeathValleyPath() string {
	return filepath.Join(c.WeatherDataDir, DeathValleyFile)
}

// EarthquakePath is the default GeoJSON feed input.
func (c *Config) EarthquakePath() string {
	return filepath.Join(c.EarthquakeDataDir, EarthquakeFile)
}

// EarthquakeReadablePath is where the indented copy of the feed is written.
func (c *Config) EarthquakeReadablePath() string {
	return filepath.Join(c.EarthquakeDataDir, EarthquakeReadable)
}

// ChartPath joins base with the output directory and the configured image extension.
func (c *Config) ChartPath(base string) string {
	return filepath.Join(c.OutputDir, base+"."+c.ChartFormat)
}

// MapPath is the HTML earthquake map output.
func (c *Config) MapPath() string {
	return filepath.Join(c.OutputDir, EarthquakeMapHTML)
}

func parsePositiveInt(key string, def int) (int, error) {
	s := sharedcfg.EnvOrDefault(key, strconv.Itoa(def))
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, s)
	}
	return n, nil
}
