package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/jdalain/teq-dashboard/internal/catalog"
)

// generateMagnitudeTimeline renders the daily maximum magnitude as an area
// line chart.
func (g *Generator) generateMagnitudeTimeline(view *catalog.View) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Magnitude Over Time",
			Subtitle: "Daily maximum magnitude",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Magnitude",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
	)

	xAxis := make([]string, 0, len(view.DailyMax))
	values := make([]opts.LineData, 0, len(view.DailyMax))
	for _, point := range view.DailyMax {
		xAxis = append(xAxis, point.Label)
		values = append(values, opts.LineData{Value: point.Value})
	}

	line.SetXAxis(xAxis).
		AddSeries("Daily max magnitude", values).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: true}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.3}),
		)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render magnitude timeline: %w", err)
	}
	return buf.String(), nil
}
