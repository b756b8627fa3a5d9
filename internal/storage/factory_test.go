package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jdalain/teq-dashboard/internal/config"
)

func TestNewStorageClient_Local(t *testing.T) {
	cfg := &config.Config{
		LocalSnapshotsDir: filepath.Join(t.TempDir(), "snapshots"),
	}

	client, err := NewStorageClient(context.Background(), DeploymentLocal, cfg)
	if err != nil {
		t.Fatalf("Failed to create local storage client: %v", err)
	}
	defer client.Close()

	if _, ok := client.(*LocalStorageClient); !ok {
		t.Errorf("Expected LocalStorageClient, got %T", client)
	}
}

func TestNewStorageClient_GCSMissingBucket(t *testing.T) {
	cfg := &config.Config{}

	if _, err := NewStorageClient(context.Background(), DeploymentGCS, cfg); err == nil {
		t.Error("Expected error for gcs deployment without a bucket")
	}
}

func TestNewStorageClient_UnsupportedMode(t *testing.T) {
	cfg := &config.Config{}

	if _, err := NewStorageClient(context.Background(), DeploymentMode("s3"), cfg); err == nil {
		t.Error("Expected error for unsupported deployment mode")
	}
}
