// Package reports assembles the dashboard HTML page and the CSV export from
// a filtered catalog view.
package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/jdalain/teq-dashboard/internal/catalog"
	"github.com/jdalain/teq-dashboard/internal/charts"
	"github.com/jdalain/teq-dashboard/internal/config"
	"github.com/jdalain/teq-dashboard/internal/logger"
	"github.com/jdalain/teq-dashboard/internal/models"
)

// strongestTableSize caps the strongest-events table.
const strongestTableSize = 10

// DashboardBuilder renders the dashboard page.
type DashboardBuilder struct {
	chartGen *charts.Generator
	tmpl     *template.Template
	goldmark goldmark.Markdown
	log      zerolog.Logger
}

// NewDashboardBuilder creates a dashboard builder.
func NewDashboardBuilder(chartGen *charts.Generator) *DashboardBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithHardWraps(),
		),
	)

	return &DashboardBuilder{
		chartGen: chartGen,
		tmpl:     template.Must(template.New("dashboard").Parse(dashboardTemplate)),
		goldmark: md,
		log:      logger.For("reports"),
	}
}

// templateData is the dashboard template's input.
type templateData struct {
	StartDate          string
	EndDate            string
	MinMagnitude       string
	MaxMagnitude       string
	Total              int
	SinceMainshock     int
	MeanInterval       string
	StrongestMagnitude string
	StrongestLocation  string
	ExportURL          string
	ActivitySummary    template.HTML
	EpicenterMap       template.HTML
	MagnitudeTimeline  template.HTML
	MagnitudeHistogram template.HTML
	IntervalTrend      template.HTML
	Strongest          []strongestRow
	Notable            []models.NotableQuake
	GeneratedAt        string
	Version            string
}

// strongestRow is one line of the strongest-events table.
type strongestRow struct {
	LocalTime string
	Magnitude string
	Depth     string
	Location  string
	Province  string
}

// BuildDashboard renders the complete dashboard page for one view.
// summaryMarkdown is the optional LLM activity summary; pass an empty string
// to omit the panel.
func (b *DashboardBuilder) BuildDashboard(view *catalog.View, notable []models.NotableQuake, summaryMarkdown string) (string, error) {
	rendered := b.chartGen.GenerateDashboardCharts(view)

	data := templateData{
		StartDate:          view.Window.Start.Format("2006-01-02"),
		EndDate:            view.Window.End.Format("2006-01-02"),
		MinMagnitude:       fmt.Sprintf("%.1f", view.Window.MinMagnitude),
		MaxMagnitude:       fmt.Sprintf("%.1f", view.Window.MaxMagnitude),
		Total:              view.Summary.Total,
		SinceMainshock:     view.Summary.SinceMainshock,
		MeanInterval:       formatInterval(view.Summary.MeanInterval24h),
		StrongestMagnitude: "n/a",
		StrongestLocation:  "No events in range",
		ExportURL:          ExportURL(view.Window),
		EpicenterMap:       template.HTML(rendered.EpicenterMap),
		MagnitudeTimeline:  template.HTML(rendered.MagnitudeTimeline),
		MagnitudeHistogram: template.HTML(rendered.MagnitudeHistogram),
		IntervalTrend:      template.HTML(rendered.IntervalTrend),
		Strongest:          strongestRows(view.Events),
		Notable:            notable,
		GeneratedAt:        time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Version:            config.GetVersion(),
	}

	if view.Summary.Strongest != nil {
		data.StrongestMagnitude = fmt.Sprintf("M%.1f", view.Summary.Strongest.Magnitude)
		data.StrongestLocation = view.Summary.Strongest.Location
	}

	if summaryMarkdown != "" {
		summaryHTML, err := b.renderMarkdown(summaryMarkdown)
		if err != nil {
			b.log.Warn().Err(err).Msg("Failed to render activity summary, omitting panel")
		} else {
			data.ActivitySummary = template.HTML(summaryHTML)
		}
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute dashboard template: %w", err)
	}
	return buf.String(), nil
}

// renderMarkdown converts the LLM summary markdown into HTML.
func (b *DashboardBuilder) renderMarkdown(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := b.goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// strongestRows formats the strongest-events table.
func strongestRows(events []models.Earthquake) []strongestRow {
	rows := make([]strongestRow, 0, strongestTableSize)
	for _, q := range catalog.Strongest(events, strongestTableSize) {
		rows = append(rows, strongestRow{
			LocalTime: q.LocalTime().Format("2006-01-02 15:04:05"),
			Magnitude: fmt.Sprintf("%.1f", q.Magnitude),
			Depth:     fmt.Sprintf("%.1f", q.Depth),
			Location:  q.Location,
			Province:  q.Province,
		})
	}
	return rows
}

// formatInterval formats the trailing-24h mean interval for the metric card.
func formatInterval(d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f min", d.Minutes())
}

// ExportURL builds the CSV export link carrying the current filter state.
func ExportURL(w catalog.Window) string {
	q := url.Values{}
	q.Set("start", w.Start.Format("2006-01-02"))
	q.Set("end", w.End.Format("2006-01-02"))
	q.Set("min_mag", fmt.Sprintf("%.1f", w.MinMagnitude))
	q.Set("max_mag", fmt.Sprintf("%.1f", w.MaxMagnitude))
	return "/export.csv?" + q.Encode()
}
