package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/jdalain/teq-dashboard/internal/catalog"
)

// generateMagnitudeHistogram renders the event count per 0.1-magnitude bin.
func (g *Generator) generateMagnitudeHistogram(view *catalog.View) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Magnitude Distribution",
			Subtitle: "Event count per magnitude bin",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Magnitude",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Events",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
	)

	xAxis := make([]string, 0, len(view.Histogram))
	values := make([]opts.BarData, 0, len(view.Histogram))
	for _, bin := range view.Histogram {
		xAxis = append(xAxis, bin.Label)
		values = append(values, opts.BarData{Value: bin.Value})
	}

	bar.SetXAxis(xAxis).AddSeries("Events", values)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render magnitude histogram: %w", err)
	}
	return buf.String(), nil
}
