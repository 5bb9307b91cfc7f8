package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the planner service.
// Environment variables are parsed from the PLANNER_ prefix.
type Config struct {
	// Build target selects the high-level environment: local, cloud
	BuildTarget string `envconfig:"BUILD_TARGET" default:"local"`

	// Derived or override driver: sqlite, postgres, or auto
	DBDriver string `envconfig:"DB_DRIVER" default:"auto"`

	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Postgres Configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// SQLite Configuration (local builds)
	SQLitePath string `envconfig:"SQLITE_PATH" default:"planner.db"`

	// External model configuration. An empty API key puts the generator
	// into deterministic-fallback mode.
	ModelAPIKey         string `envconfig:"MODEL_API_KEY" default:""`
	ModelBaseURL        string `envconfig:"MODEL_BASE_URL" default:"https://api.deepseek.com/v1"`
	ModelName           string `envconfig:"MODEL_NAME" default:"deepseek-chat"`
	ModelTimeoutSeconds int    `envconfig:"MODEL_TIMEOUT_SECONDS" default:"30"`

	// Default timezone applied when a request omits one.
	DefaultTimezone string `envconfig:"DEFAULT_TIMEZONE" default:"UTC"`
}

// ResolveDefaults validates BuildTarget and derives DBDriver when set to
// "auto" or empty.
func (c *Config) ResolveDefaults() error {
	var defaultDB string

	switch c.BuildTarget {
	case "local":
		defaultDB = "sqlite"
	case "cloud":
		defaultDB = "postgres"
	default:
		return fmt.Errorf("unsupported BUILD_TARGET: %s", c.BuildTarget)
	}

	if c.DBDriver == "" || c.DBDriver == "auto" {
		c.DBDriver = defaultDB
	}

	allowedDB := map[string]bool{"sqlite": true, "postgres": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("POSTGRES_DSN is required for the postgres driver")
	}
	if c.ModelTimeoutSeconds <= 0 {
		return fmt.Errorf("MODEL_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Variables are prefixed with PLANNER_, e.g. PLANNER_HTTP_PORT.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("PLANNER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("model", cfg.ModelName).
		Bool("model_key_present", cfg.ModelAPIKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	cfg := &Config{
		BuildTarget:         "local",
		DBDriver:            "auto",
		Environment:         EnvTesting,
		HTTPPort:            8080,
		SQLitePath:          "file::memory:?cache=shared",
		ModelBaseURL:        "https://api.deepseek.com/v1",
		ModelName:           "deepseek-chat",
		ModelTimeoutSeconds: 30,
		DefaultTimezone:     "UTC",
	}
	return cfg
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// ModelTimeout returns the bound applied to external model calls.
func (c *Config) ModelTimeout() time.Duration {
	return time.Duration(c.ModelTimeoutSeconds) * time.Second
}
