package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/billboard-insights/pkg/util"
)

// TimezoneFallbackOffset is Sri Lanka Standard Time, applied when the host has no tzdata
// for forecast.timezone.
const TimezoneFallbackOffset = 5*time.Hour + 30*time.Minute

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Forecast  ForecastConfig  `yaml:"forecast"`
	Billboard BillboardConfig `yaml:"billboard"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Lookups   LookupsConfig   `yaml:"lookups"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	CORS         CORSConfig      `yaml:"cors"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// CORSConfig lists origins allowed to call the API. Empty means any origin.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// ForecastConfig tunes the impression synthesizer.
type ForecastConfig struct {
	HistoryDays int    `yaml:"historyDays"`
	Timezone    string `yaml:"timezone"`
}

// Location resolves Timezone, falling back to a fixed +05:30 zone of the same name.
func (f ForecastConfig) Location() *time.Location {
	return util.LoadLocation(f.Timezone, TimezoneFallbackOffset)
}

// BillboardConfig holds catalog facing API knobs.
type BillboardConfig struct {
	TrendingLimit int `yaml:"trendingLimit"`
}

// CatalogConfig selects where billboards are loaded from.
// Postgres wins over Path, and Path wins over the embedded catalog.
type CatalogConfig struct {
	Path     string         `yaml:"path"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// LookupsConfig controls where prediction lookup counters live.
type LookupsConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the counter store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	} else if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.CORS.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("FORECAST_HISTORY_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Forecast.HistoryDays = parsed
		}
	}
	if v := os.Getenv("FORECAST_TIMEZONE"); v != "" {
		cfg.Forecast.Timezone = v
	}
	if v := os.Getenv("BILLBOARD_TRENDING_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Billboard.TrendingLimit = parsed
		}
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_DSN"); v != "" {
		cfg.Catalog.Postgres.DSN = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("LOOKUPS_VALKEY_ENABLED"); v != "" {
		cfg.Lookups.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("LOOKUPS_VALKEY_ADDR"); v != "" {
		cfg.Lookups.Valkey.Addr = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":5000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Forecast: ForecastConfig{
			HistoryDays: 60,
			Timezone:    "Asia/Colombo",
		},
		Billboard: BillboardConfig{
			TrendingLimit: 5,
		},
		Catalog: CatalogConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Lookups: LookupsConfig{
			Valkey: ValkeyConfig{
				Prefix: "billboard",
			},
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "billboard",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Forecast.HistoryDays < 1 {
		return errors.New("forecast.historyDays must be at least 1")
	}
	if c.Forecast.HistoryDays > 3650 {
		return errors.New("forecast.historyDays cannot exceed 3650")
	}
	if c.Billboard.TrendingLimit <= 0 {
		return errors.New("billboard.trendingLimit must be positive")
	}
	if c.Lookups.Valkey.Enabled && strings.TrimSpace(c.Lookups.Valkey.Addr) == "" {
		return errors.New("lookups.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.Catalog.Postgres.MinConns > c.Catalog.Postgres.MaxConns && c.Catalog.Postgres.MaxConns > 0 {
		return errors.New("catalog.postgres.minConns cannot exceed maxConns")
	}
	return nil
}
