// Package charts renders the dashboard chart set: interactive go-echarts
// fragments for the web page and static go-chart PNGs for snapshot bundles.
package charts

import (
	"github.com/jdalain/teq-dashboard/internal/catalog"
)

// Generator renders charts for one dashboard view.
type Generator struct {
	outputDir string
}

// NewGenerator creates a chart generator. outputDir is only used by the PNG
// renderers; it may be empty for the interactive dashboard path.
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// DashboardCharts holds the rendered interactive chart fragments.
type DashboardCharts struct {
	EpicenterMap       string
	MagnitudeTimeline  string
	MagnitudeHistogram string
	IntervalTrend      string
}

// GenerateDashboardCharts renders all interactive charts for the view.
// A chart that fails to render is replaced with a placeholder so one bad
// series does not take down the whole page.
func (g *Generator) GenerateDashboardCharts(view *catalog.View) *DashboardCharts {
	rendered := &DashboardCharts{
		EpicenterMap:       "<p>Epicenter map unavailable</p>",
		MagnitudeTimeline:  "<p>Magnitude timeline unavailable</p>",
		MagnitudeHistogram: "<p>Magnitude distribution unavailable</p>",
		IntervalTrend:      "<p>Interval trend unavailable</p>",
	}

	if html, err := g.generateEpicenterMap(view); err == nil {
		rendered.EpicenterMap = html
	}
	if html, err := g.generateMagnitudeTimeline(view); err == nil {
		rendered.MagnitudeTimeline = html
	}
	if html, err := g.generateMagnitudeHistogram(view); err == nil {
		rendered.MagnitudeHistogram = html
	}
	if html, err := g.generateIntervalTrend(view); err == nil {
		rendered.IntervalTrend = html
	}

	return rendered
}
