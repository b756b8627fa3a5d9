package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/jdalain/teq-dashboard/internal/catalog"
)

// generateIntervalTrend renders the daily mean minutes between consecutive
// events.
func (g *Generator) generateIntervalTrend(view *catalog.View) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Average Time Between Earthquakes",
			Subtitle: "Daily mean interval, minutes",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Minutes",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
	)

	xAxis := make([]string, 0, len(view.Intervals))
	values := make([]opts.LineData, 0, len(view.Intervals))
	for _, point := range view.Intervals {
		xAxis = append(xAxis, point.Label)
		values = append(values, opts.LineData{Value: point.Value})
	}

	line.SetXAxis(xAxis).
		AddSeries("Mean interval", values).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render interval trend: %w", err)
	}
	return buf.String(), nil
}
