package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jdalain/teq-dashboard/internal/catalog"
)

// RenderPNGCharts writes static chart images for a snapshot bundle and
// returns the generated file paths. Series too short to plot are skipped.
func (g *Generator) RenderPNGCharts(view *catalog.View) ([]string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create chart output directory: %w", err)
	}

	var files []string

	if file, err := g.renderTimelinePNG(view); err == nil {
		files = append(files, file)
	}
	if file, err := g.renderHistogramPNG(view); err == nil {
		files = append(files, file)
	}
	if file, err := g.renderIntervalPNG(view); err == nil {
		files = append(files, file)
	}

	return files, nil
}

// renderTimelinePNG draws the daily maximum magnitude series.
func (g *Generator) renderTimelinePNG(view *catalog.View) (string, error) {
	xValues, yValues, err := seriesToTimePoints(view.DailyMax)
	if err != nil {
		return "", err
	}

	graph := chart.Chart{
		Title: "Daily Maximum Magnitude",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 60, Right: 20, Bottom: 40},
		},
		Height: 350,
		Width:  700,
		XAxis: chart.XAxis{
			Name: "Date",
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(time.Time); ok {
					return t.Format("01-02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: "Magnitude",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 8,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Daily max magnitude",
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 217, G: 78, B: 93, A: 255},
					StrokeWidth: 2,
					FillColor:   drawing.Color{R: 217, G: 78, B: 93, A: 60},
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	return g.writePNG("magnitude_timeline.png", graph.Render)
}

// renderHistogramPNG draws the magnitude distribution.
func (g *Generator) renderHistogramPNG(view *catalog.View) (string, error) {
	if len(view.Histogram) == 0 {
		return "", fmt.Errorf("no histogram bins to plot")
	}

	bars := make([]chart.Value, 0, len(view.Histogram))
	for _, bin := range view.Histogram {
		bars = append(bars, chart.Value{Value: bin.Value, Label: bin.Label})
	}

	graph := chart.BarChart{
		Title: "Magnitude Distribution",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 60, Right: 20, Bottom: 40},
		},
		Height:   350,
		Width:    700,
		BarWidth: 20,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: "Events",
		},
	}

	return g.writePNG("magnitude_histogram.png", graph.Render)
}

// renderIntervalPNG draws the daily mean inter-event interval.
func (g *Generator) renderIntervalPNG(view *catalog.View) (string, error) {
	xValues, yValues, err := seriesToTimePoints(view.Intervals)
	if err != nil {
		return "", err
	}

	graph := chart.Chart{
		Title: "Mean Interval Between Events (minutes)",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 70, Right: 20, Bottom: 40},
		},
		Height: 350,
		Width:  700,
		XAxis: chart.XAxis{
			Name: "Date",
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(time.Time); ok {
					return t.Format("01-02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: "Minutes",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Mean interval",
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 51, G: 102, B: 204, A: 255},
					StrokeWidth: 2,
					DotColor:    drawing.Color{R: 51, G: 102, B: 204, A: 255},
					DotWidth:    3,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	return g.writePNG("interval_trend.png", graph.Render)
}

// writePNG renders a chart to a file in the output directory.
func (g *Generator) writePNG(filename string, render func(chart.RendererProvider, io.Writer) error) (string, error) {
	path := filepath.Join(g.outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	defer f.Close()

	if err := render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render chart %s: %w", filename, err)
	}

	return path, nil
}

// seriesToTimePoints converts a date-labelled series into time/value slices.
// go-chart needs at least two points to draw a time series.
func seriesToTimePoints(series []catalog.SeriesPoint) ([]time.Time, []float64, error) {
	if len(series) < 2 {
		return nil, nil, fmt.Errorf("need at least two points, got %d", len(series))
	}

	xValues := make([]time.Time, 0, len(series))
	yValues := make([]float64, 0, len(series))
	for _, point := range series {
		ts, err := time.ParseInLocation("2006-01-02", point.Label, time.UTC)
		if err != nil {
			continue
		}
		xValues = append(xValues, ts)
		yValues = append(yValues, point.Value)
	}

	if len(xValues) < 2 {
		return nil, nil, fmt.Errorf("not enough parseable points")
	}
	return xValues, yValues, nil
}
