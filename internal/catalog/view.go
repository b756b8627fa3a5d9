package catalog

import (
	"time"

	"github.com/jdalain/teq-dashboard/internal/models"
)

// View bundles one filtered event list with everything derived from it.
// It is built once per dashboard render or snapshot.
type View struct {
	Window    Window              `json:"window"`
	Events    []models.Earthquake `json:"events"`
	Summary   Summary             `json:"summary"`
	DailyMax  []SeriesPoint       `json:"daily_max_magnitude"`
	Histogram []SeriesPoint       `json:"magnitude_histogram"`
	Intervals []SeriesPoint       `json:"daily_mean_interval_minutes"`
}

// BuildView filters the fetched events and derives all dashboard series.
// now anchors the trailing-24h metrics.
func BuildView(events []models.Earthquake, w Window, now time.Time) *View {
	filtered := Filter(events, w)

	return &View{
		Window:    w,
		Events:    filtered,
		Summary:   Summarize(filtered, now),
		DailyMax:  DailyMaxMagnitude(filtered),
		Histogram: MagnitudeHistogram(filtered),
		Intervals: DailyMeanInterval(filtered),
	}
}
