package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/jdalain/teq-dashboard/internal/catalog"
)

// generateEpicenterMap renders a lon/lat scatter of epicenters. Symbol size
// grows with magnitude; the visual map colors the magnitude dimension.
func (g *Generator) generateEpicenterMap(view *catalog.View) (string, error) {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "450px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Earthquake Epicenters",
			Subtitle: "Symbol size and color by magnitude",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Longitude",
			Type: "value",
			Min:  "dataMin",
			Max:  "dataMax",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Latitude",
			Type: "value",
			Min:  "dataMin",
			Max:  "dataMax",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "item",
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        0,
			Max:        8,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#50a3ba", "#eac736", "#d94e5d"},
			},
		}),
	)

	points := make([]opts.ScatterData, 0, len(view.Events))
	for _, q := range view.Events {
		points = append(points, opts.ScatterData{
			Name:       fmt.Sprintf("%s M%.1f", q.Location, q.Magnitude),
			Value:      []interface{}{q.Longitude, q.Latitude, q.Magnitude},
			SymbolSize: int(q.Magnitude*3) + 4,
		})
	}

	scatter.SetXAxis(nil).AddSeries("Epicenters", points)

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render epicenter map: %w", err)
	}
	return buf.String(), nil
}
