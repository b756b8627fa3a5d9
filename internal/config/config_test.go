package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	ctx := context.Background()

	cfg, err := Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8982" {
		t.Errorf("Expected default port 8982, got %s", cfg.Port)
	}

	if cfg.Environment != "local" {
		t.Errorf("Expected default environment 'local', got %s", cfg.Environment)
	}

	if cfg.AFADEventURL == "" {
		t.Error("AFAD event URL should have a default")
	}

	if cfg.USGSFeedURL == "" {
		t.Error("USGS feed URL should have a default")
	}

	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("Expected default cache TTL 5m, got %v", cfg.CacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "gcs")
	t.Setenv("GCS_BUCKET", "quake-snapshots")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}

	if cfg.Environment != "gcs" {
		t.Errorf("Expected environment 'gcs', got %s", cfg.Environment)
	}

	if cfg.GCSBucket != "quake-snapshots" {
		t.Errorf("Expected bucket 'quake-snapshots', got %s", cfg.GCSBucket)
	}

	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("Expected cache TTL 30s, got %v", cfg.CacheTTL)
	}
}

func TestDefaultStart(t *testing.T) {
	cfg := &Config{DefaultStartDate: "2023-02-06"}

	ts, err := cfg.DefaultStart()
	if err != nil {
		t.Fatalf("DefaultStart failed: %v", err)
	}

	want := time.Date(2023, 2, 6, 0, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("Expected %v, got %v", want, ts)
	}
}

func TestDefaultStartInvalid(t *testing.T) {
	cfg := &Config{DefaultStartDate: "06.02.2023"}

	if _, err := cfg.DefaultStart(); err == nil {
		t.Error("Expected error for invalid date format, got nil")
	}
}

func TestLoadRejectsInvalidStartDate(t *testing.T) {
	t.Setenv("DEFAULT_START_DATE", "not-a-date")

	if _, err := Load(context.Background()); err == nil {
		t.Error("Expected error for invalid DEFAULT_START_DATE, got nil")
	}
}
