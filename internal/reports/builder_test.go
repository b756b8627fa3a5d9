package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdalain/teq-dashboard/internal/catalog"
	"github.com/jdalain/teq-dashboard/internal/charts"
	"github.com/jdalain/teq-dashboard/internal/models"
)

func testView() *catalog.View {
	base := time.Date(2023, 2, 6, 4, 0, 0, 0, time.UTC)
	events := []models.Earthquake{
		{EventID: "1", Time: base, Latitude: 37.2, Longitude: 37.0, Depth: 8.6, Magnitude: 7.7, MagnitudeType: "Mw", Location: "Pazarcık (Kahramanmaraş)", Country: models.CountryTurkiye, Province: "Kahramanmaraş"},
		{EventID: "2", Time: base.Add(9 * time.Hour), Latitude: 38.0, Longitude: 37.2, Depth: 7.0, Magnitude: 7.6, MagnitudeType: "Mw", Location: "Elbistan (Kahramanmaraş)", Country: models.CountryTurkiye, Province: "Kahramanmaraş"},
		{EventID: "3", Time: base.Add(30 * time.Hour), Latitude: 37.5, Longitude: 36.9, Depth: 5.0, Magnitude: 5.2, MagnitudeType: "ML", Location: "Nurdağı (Gaziantep)", Country: models.CountryTurkiye, Province: "Gaziantep"},
	}
	w := catalog.Window{
		Start:        time.Date(2023, 2, 6, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2023, 2, 9, 0, 0, 0, 0, time.UTC),
		MinMagnitude: 1,
		MaxMagnitude: 10,
	}
	return catalog.BuildView(events, w, base.Add(48*time.Hour))
}

func TestBuildDashboard(t *testing.T) {
	b := NewDashboardBuilder(charts.NewGenerator(""))

	page, err := b.BuildDashboard(testView(), nil, "")
	require.NoError(t, err)

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "Türkiye Earthquake Dashboard")
	// Filter controls carry the window back into the form.
	assert.Contains(t, page, `value="2023-02-06"`)
	assert.Contains(t, page, `value="2023-02-09"`)
	assert.Contains(t, page, `value="1.0"`)
	assert.Contains(t, page, `value="10.0"`)
	// Headline metrics.
	assert.Contains(t, page, "M7.7")
	assert.Contains(t, page, "Pazarcık (Kahramanmaraş)")
	// Interactive charts embedded.
	assert.Contains(t, page, "echarts")
	// Export link preserves the filters.
	assert.Contains(t, page, "/export.csv?end=2023-02-09")
}

func TestBuildDashboardWithNotableAndSummary(t *testing.T) {
	b := NewDashboardBuilder(charts.NewGenerator(""))

	notable := []models.NotableQuake{
		{Title: "M 7.8 - Pazarcik, Turkey", Link: "https://example.org/ev1", Published: time.Date(2023, 2, 6, 1, 17, 0, 0, time.UTC)},
	}
	page, err := b.BuildDashboard(testView(), notable, "## Activity summary\n\nAftershock rates are **decaying**.")
	require.NoError(t, err)

	assert.Contains(t, page, "M 7.8 - Pazarcik, Turkey")
	assert.Contains(t, page, "https://example.org/ev1")
	// Markdown summary rendered to HTML.
	assert.Contains(t, page, "<strong>decaying</strong>")
	assert.Contains(t, page, "Activity summary")
}

func TestBuildDashboardEmptyView(t *testing.T) {
	b := NewDashboardBuilder(charts.NewGenerator(""))

	w := catalog.Window{
		Start:        time.Date(2023, 2, 6, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2023, 2, 7, 0, 0, 0, 0, time.UTC),
		MaxMagnitude: 10,
	}
	page, err := b.BuildDashboard(catalog.BuildView(nil, w, w.End), nil, "")
	require.NoError(t, err)

	assert.Contains(t, page, "No events in the selected range")
	assert.Contains(t, page, "n/a")
}

func TestExportURL(t *testing.T) {
	w := catalog.Window{
		Start:        time.Date(2023, 2, 6, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		MinMagnitude: 2.5,
		MaxMagnitude: 9,
	}
	u := ExportURL(w)
	assert.True(t, strings.HasPrefix(u, "/export.csv?"))
	assert.Contains(t, u, "start=2023-02-06")
	assert.Contains(t, u, "end=2023-03-01")
	assert.Contains(t, u, "min_mag=2.5")
	assert.Contains(t, u, "max_mag=9.0")
}
