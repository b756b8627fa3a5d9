package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jdalain/teq-dashboard/internal/catalog"
	"github.com/jdalain/teq-dashboard/internal/models"
)

// csvHeader matches the dashboard table columns plus the raw coordinates.
var csvHeader = []string{
	"event_id", "date", "time_trt", "latitude", "longitude",
	"depth_km", "magnitude", "magnitude_type", "location", "province",
}

// WriteCSV writes the filtered events as CSV, one row per event, local time
// split into date and time columns.
func WriteCSV(w io.Writer, events []models.Earthquake) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, q := range events {
		local := q.LocalTime()
		row := []string{
			q.EventID,
			local.Format("2006-01-02"),
			local.Format("15:04:05"),
			fmt.Sprintf("%.4f", q.Latitude),
			fmt.Sprintf("%.4f", q.Longitude),
			fmt.Sprintf("%.1f", q.Depth),
			fmt.Sprintf("%.1f", q.Magnitude),
			q.MagnitudeType,
			q.Location,
			q.Province,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFileName names the CSV download after the filter window.
func ExportFileName(w catalog.Window) string {
	return fmt.Sprintf("earthquakes_%s_%s.csv",
		w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}
