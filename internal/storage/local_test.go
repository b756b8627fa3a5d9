package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewLocalStorageClient(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "snapshots")

	client, err := NewLocalStorageClient(baseDir)
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		t.Error("base directory was not created")
	}
}

func TestLocalStorageClient_StoreAndGetFile(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	timestamp := time.Date(2023, 2, 6, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name     string
		filename string
		fileData []byte
	}{
		{
			name:     "snapshot page",
			filename: "index.html",
			fileData: []byte("<html><body>Dashboard</body></html>"),
		},
		{
			name:     "csv export",
			filename: "earthquakes.csv",
			fileData: []byte("event_id,date\n1,2023-02-06\n"),
		},
		{
			name:     "binary chart",
			filename: "magnitude_timeline.png",
			fileData: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
		},
		{
			name:     "empty file",
			filename: "empty.txt",
			fileData: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.StoreFile(ctx, tt.fileData, tt.filename, timestamp); err != nil {
				t.Fatalf("StoreFile() error = %v", err)
			}

			path := GenerateSnapshotFolderPath(timestamp) + "/" + tt.filename
			data, err := client.GetFile(ctx, path)
			if err != nil {
				t.Fatalf("GetFile() error = %v", err)
			}
			if !bytes.Equal(data, tt.fileData) {
				t.Errorf("GetFile() content mismatch: got %d bytes, want %d", len(data), len(tt.fileData))
			}
		})
	}
}

func TestLocalStorageClient_GetFileMissing(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	if _, err := client.GetFile(context.Background(), "nonexistent.txt"); err == nil {
		t.Error("GetFile() should fail for a missing file")
	}
}

func TestLocalStorageClient_ListSnapshots(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	timestamps := []time.Time{
		time.Date(2023, 2, 6, 10, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 7, 11, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 8, 12, 0, 0, 0, time.UTC),
	}
	for _, ts := range timestamps {
		if err := client.StoreFile(ctx, []byte("<html></html>"), "index.html", ts); err != nil {
			t.Fatalf("StoreFile() error = %v", err)
		}
		// Non-page files must not show up in the listing.
		if err := client.StoreFile(ctx, []byte("a,b\n"), "earthquakes.csv", ts); err != nil {
			t.Fatalf("StoreFile() error = %v", err)
		}
	}

	snapshots, err := client.ListSnapshots(ctx, 0)
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(snapshots) != 3 {
		t.Fatalf("ListSnapshots() returned %d entries, want 3", len(snapshots))
	}

	// Newest first.
	want := "2023/02/08/QuakeSnapshot-2023-02-08-12-00-00/index.html"
	if snapshots[0] != want {
		t.Errorf("ListSnapshots()[0] = %v, want %v", snapshots[0], want)
	}

	limited, err := client.ListSnapshots(ctx, 2)
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListSnapshots() with limit returned %d entries, want 2", len(limited))
	}
}

func TestLocalStorageClient_GetLatestSnapshot(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	if _, err := client.GetLatestSnapshot(ctx); err == nil {
		t.Error("GetLatestSnapshot() should fail with no snapshots")
	}

	ts := time.Date(2023, 2, 6, 10, 0, 0, 0, time.UTC)
	if err := client.StoreFile(ctx, []byte("<html></html>"), "index.html", ts); err != nil {
		t.Fatalf("StoreFile() error = %v", err)
	}

	latest, err := client.GetLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("GetLatestSnapshot() error = %v", err)
	}
	want := "2023/02/06/QuakeSnapshot-2023-02-06-10-00-00/index.html"
	if latest != want {
		t.Errorf("GetLatestSnapshot() = %v, want %v", latest, want)
	}
}
