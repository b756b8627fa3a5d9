package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdalain/teq-dashboard/internal/catalog"
	"github.com/jdalain/teq-dashboard/internal/models"
)

func testView(t *testing.T) *catalog.View {
	t.Helper()

	base := time.Date(2023, 2, 6, 4, 0, 0, 0, time.UTC)
	events := []models.Earthquake{
		{EventID: "1", Time: base, Latitude: 37.2, Longitude: 37.0, Magnitude: 7.7, Location: "Pazarcık", Country: models.CountryTurkiye},
		{EventID: "2", Time: base.Add(2 * time.Hour), Latitude: 38.0, Longitude: 37.2, Magnitude: 7.6, Location: "Elbistan", Country: models.CountryTurkiye},
		{EventID: "3", Time: base.Add(26 * time.Hour), Latitude: 37.5, Longitude: 36.9, Magnitude: 5.2, Location: "Nurdağı", Country: models.CountryTurkiye},
		{EventID: "4", Time: base.Add(50 * time.Hour), Latitude: 37.8, Longitude: 37.5, Magnitude: 4.1, Location: "Gölbaşı", Country: models.CountryTurkiye},
	}

	w := catalog.Window{
		Start:        base.Add(-time.Hour),
		End:          base.Add(72 * time.Hour),
		MinMagnitude: 0,
		MaxMagnitude: 10,
	}
	return catalog.BuildView(events, w, base.Add(72*time.Hour))
}

func TestGenerateDashboardCharts(t *testing.T) {
	g := NewGenerator("")
	rendered := g.GenerateDashboardCharts(testView(t))
	require.NotNil(t, rendered)

	fragments := map[string]string{
		"epicenter map":      rendered.EpicenterMap,
		"magnitude timeline": rendered.MagnitudeTimeline,
		"histogram":          rendered.MagnitudeHistogram,
		"interval trend":     rendered.IntervalTrend,
	}
	for name, html := range fragments {
		assert.Contains(t, html, "echarts", "%s should be a rendered chart", name)
		assert.NotContains(t, html, "unavailable", "%s should not be a placeholder", name)
	}
}

func TestGenerateDashboardChartsEmptyView(t *testing.T) {
	g := NewGenerator("")
	w := catalog.Window{Start: time.Now().Add(-time.Hour), End: time.Now(), MaxMagnitude: 10}
	rendered := g.GenerateDashboardCharts(catalog.BuildView(nil, w, time.Now()))
	require.NotNil(t, rendered)

	// Empty series still render as empty charts rather than crashing.
	assert.NotEmpty(t, rendered.EpicenterMap)
	assert.NotEmpty(t, rendered.MagnitudeHistogram)
}

func TestRenderPNGCharts(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)

	files, err := g.RenderPNGCharts(testView(t))
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, file := range files {
		assert.True(t, strings.HasPrefix(file, dir))
		data, err := os.ReadFile(file)
		require.NoError(t, err)
		require.True(t, len(data) > 8, "%s should not be empty", file)
		assert.Equal(t, "\x89PNG", string(data[:4]), "%s should be a PNG", filepath.Base(file))
	}
}

func TestRenderPNGChartsShortSeries(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)

	// One event gives single-point time series, which cannot be plotted.
	// Only the histogram survives.
	events := []models.Earthquake{
		{EventID: "1", Time: time.Date(2023, 2, 6, 4, 0, 0, 0, time.UTC), Magnitude: 7.7, Country: models.CountryTurkiye},
	}
	w := catalog.Window{Start: time.Date(2023, 2, 6, 0, 0, 0, 0, time.UTC), End: time.Date(2023, 2, 7, 0, 0, 0, 0, time.UTC), MaxMagnitude: 10}
	view := catalog.BuildView(events, w, w.End)

	files, err := g.RenderPNGCharts(view)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "magnitude_histogram.png", filepath.Base(files[0]))
}
