package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the earthquake dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8982"`

	// Deployment environment: "local" or "gcs"
	Environment string `env:"ENVIRONMENT,default=local"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	// Data source URLs
	AFADEventURL string `env:"AFAD_EVENT_URL,default=https://deprem.afad.gov.tr/apiv2/event/filter"`
	USGSFeedURL  string `env:"USGS_FEED_URL,default=https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/significant_month.atom"`

	// Default dashboard window start (the Kahramanmaraş mainshock date)
	DefaultStartDate string `env:"DEFAULT_START_DATE,default=2023-02-06"`

	// Fetch cache lifetime for a given date window
	CacheTTL time.Duration `env:"CACHE_TTL,default=5m"`

	// Snapshot storage
	LocalSnapshotsDir string `env:"LOCAL_SNAPSHOTS_DIR,default=./snapshots"`
	GCSBucket         string `env:"GCS_BUCKET"`

	// OpenAI configuration (optional; narrative summary is skipped without a key)
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4o-mini"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if _, err := cfg.DefaultStart(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultStart parses the configured default window start date.
func (c *Config) DefaultStart() (time.Time, error) {
	ts, err := time.ParseInLocation("2006-01-02", c.DefaultStartDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid DEFAULT_START_DATE %q: %w", c.DefaultStartDate, err)
	}
	return ts, nil
}
