// Package catalog filters fetched earthquake events and derives the summary
// statistics and chart series shown on the dashboard.
package catalog

import (
	"sort"
	"time"

	"github.com/jdalain/teq-dashboard/internal/models"
)

// MainshockTime is the instant of the 2023-02-06 Pazarcık mainshock. The
// since-mainshock counter excludes the unrelated events recorded earlier
// that day.
var MainshockTime = time.Date(2023, 2, 6, 1, 17, 32, 0, time.UTC)

// Window describes one filtered dashboard view.
type Window struct {
	Start        time.Time
	End          time.Time
	MinMagnitude float64
	MaxMagnitude float64
}

// Filter returns the events inside the window, restricted to Türkiye.
// Narrowing any bound always yields a subset of the wider view.
func Filter(events []models.Earthquake, w Window) []models.Earthquake {
	filtered := make([]models.Earthquake, 0, len(events))
	for _, q := range events {
		if q.Country != models.CountryTurkiye {
			continue
		}
		if q.Magnitude < w.MinMagnitude || q.Magnitude > w.MaxMagnitude {
			continue
		}
		if q.Time.Before(w.Start) || q.Time.After(w.End) {
			continue
		}
		filtered = append(filtered, q)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Time.Before(filtered[j].Time)
	})
	return filtered
}

// Strongest returns the n highest-magnitude events, strongest first.
func Strongest(events []models.Earthquake, n int) []models.Earthquake {
	ranked := make([]models.Earthquake, len(events))
	copy(ranked, events)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Magnitude != ranked[j].Magnitude {
			return ranked[i].Magnitude > ranked[j].Magnitude
		}
		return ranked[i].Time.Before(ranked[j].Time)
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
