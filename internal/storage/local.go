package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LocalStorageClient stores snapshots on the local filesystem.
type LocalStorageClient struct {
	baseDir string
}

// NewLocalStorageClient creates a new local storage client
func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalStorageClient{
		baseDir: baseDir,
	}, nil
}

// Close is a no-op for local storage (implements same interface as GCSClient)
func (l *LocalStorageClient) Close() error {
	return nil
}

// StoreFile writes one snapshot file into the timestamped snapshot folder.
func (l *LocalStorageClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	filePath := filepath.Join(l.baseDir, GenerateSnapshotFolderPath(timestamp), filename)

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(filePath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	return nil
}

// GetFile retrieves a file by its path relative to the base directory.
func (l *LocalStorageClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// GetLatestSnapshot returns the most recent snapshot page.
func (l *LocalStorageClient) GetLatestSnapshot(ctx context.Context) (string, error) {
	snapshots, err := l.ListSnapshots(ctx, 1)
	if err != nil {
		return "", err
	}
	if len(snapshots) == 0 {
		return "", fmt.Errorf("no snapshots found")
	}
	return snapshots[0], nil
}

// ListSnapshots lists stored snapshot pages, newest first. The timestamped
// folder naming makes the lexical order the chronological order.
func (l *LocalStorageClient) ListSnapshots(ctx context.Context, limit int) ([]string, error) {
	var snapshotPaths []string

	err := filepath.Walk(l.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors and continue
		}
		if info.Name() == "index.html" {
			relPath, _ := filepath.Rel(l.baseDir, path)
			snapshotPaths = append(snapshotPaths, filepath.ToSlash(relPath))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk snapshots directory: %w", err)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(snapshotPaths)))

	if limit > 0 && limit < len(snapshotPaths) {
		snapshotPaths = snapshotPaths[:limit]
	}

	return snapshotPaths, nil
}
