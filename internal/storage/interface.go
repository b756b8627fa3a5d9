// Package storage persists dashboard snapshots locally or in GCS.
package storage

import (
	"context"
	"time"
)

// StorageClient abstracts snapshot storage so the service runs unchanged
// against the local filesystem or a GCS bucket.
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores one file of a snapshot bundle. timestamp selects
	// the snapshot folder.
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a file by its storage-relative path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListSnapshots lists stored snapshot pages, newest first
	ListSnapshots(ctx context.Context, limit int) ([]string, error)

	// GetLatestSnapshot returns the path of the most recent snapshot page
	GetLatestSnapshot(ctx context.Context) (string, error)
}
