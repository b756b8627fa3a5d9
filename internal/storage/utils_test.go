package storage

import (
	"testing"
	"time"
)

func TestGenerateSnapshotFolderPath(t *testing.T) {
	tests := []struct {
		name      string
		timestamp time.Time
		expected  string
	}{
		{
			name:      "standard date and time",
			timestamp: time.Date(2023, 2, 6, 14, 30, 45, 0, time.UTC),
			expected:  "2023/02/06/QuakeSnapshot-2023-02-06-14-30-45",
		},
		{
			name:      "new year date",
			timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expected:  "2025/01/01/QuakeSnapshot-2025-01-01-00-00-00",
		},
		{
			name:      "single digit month and day",
			timestamp: time.Date(2025, 3, 5, 8, 7, 6, 0, time.UTC),
			expected:  "2025/03/05/QuakeSnapshot-2025-03-05-08-07-06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GenerateSnapshotFolderPath(tt.timestamp)
			if result != tt.expected {
				t.Errorf("GenerateSnapshotFolderPath() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"index.html", "text/html"},
		{"view.json", "application/json"},
		{"earthquakes_2023-02-06_2023-03-01.csv", "text/csv"},
		{"magnitude_timeline.png", "image/png"},
		{"summary.md", "text/markdown"},
		{"styles.css", "text/css"},
		{"notes.txt", "text/plain"},
		{"archive.zip", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := GetContentType(tt.filename); got != tt.expected {
				t.Errorf("GetContentType(%q) = %v, want %v", tt.filename, got, tt.expected)
			}
		})
	}
}
