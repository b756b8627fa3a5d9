package catalog

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jdalain/teq-dashboard/internal/models"
)

// Summary holds the headline metrics for one filtered view.
type Summary struct {
	Total           int                `json:"total"`
	SinceMainshock  int                `json:"since_mainshock"`
	MeanInterval24h time.Duration      `json:"mean_interval_24h"`
	Strongest       *models.Earthquake `json:"strongest,omitempty"`
}

// SeriesPoint is one labelled value of a chart series.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Summarize computes headline metrics over an already filtered, time-sorted
// event list. now anchors the trailing-24h interval metric.
func Summarize(events []models.Earthquake, now time.Time) Summary {
	s := Summary{Total: len(events)}

	var strongest *models.Earthquake
	for i := range events {
		if !events[i].Time.Before(MainshockTime) {
			s.SinceMainshock++
		}
		if strongest == nil || events[i].Magnitude > strongest.Magnitude {
			strongest = &events[i]
		}
	}
	if strongest != nil {
		q := *strongest
		s.Strongest = &q
	}

	s.MeanInterval24h = meanInterval(events, now.Add(-24*time.Hour), now)
	return s
}

// meanInterval returns the mean gap between consecutive events inside
// [from, to], or zero when fewer than two events fall in the range.
func meanInterval(events []models.Earthquake, from, to time.Time) time.Duration {
	var inRange []time.Time
	for _, q := range events {
		if q.Time.Before(from) || q.Time.After(to) {
			continue
		}
		inRange = append(inRange, q.Time)
	}
	if len(inRange) < 2 {
		return 0
	}

	sort.Slice(inRange, func(i, j int) bool { return inRange[i].Before(inRange[j]) })

	var total time.Duration
	for i := 1; i < len(inRange); i++ {
		total += inRange[i].Sub(inRange[i-1])
	}
	return total / time.Duration(len(inRange)-1)
}

// DailyMaxMagnitude returns the maximum magnitude recorded per calendar day,
// in date order.
func DailyMaxMagnitude(events []models.Earthquake) []SeriesPoint {
	maxByDay := make(map[string]float64)
	for _, q := range events {
		day := q.DateString()
		if q.Magnitude > maxByDay[day] {
			maxByDay[day] = q.Magnitude
		}
	}
	return sortedSeries(maxByDay)
}

// MagnitudeHistogram counts events per 0.1-magnitude bin, smallest bin first.
// Bins are ordered numerically; a lexical sort would put "10.0" before "2.0".
func MagnitudeHistogram(events []models.Earthquake) []SeriesPoint {
	counts := make(map[float64]float64)
	for _, q := range events {
		bin := math.Round(q.Magnitude*10) / 10
		counts[bin]++
	}

	bins := make([]float64, 0, len(counts))
	for bin := range counts {
		bins = append(bins, bin)
	}
	sort.Float64s(bins)

	series := make([]SeriesPoint, 0, len(bins))
	for _, bin := range bins {
		series = append(series, SeriesPoint{Label: fmt.Sprintf("%.1f", bin), Value: counts[bin]})
	}
	return series
}

// DailyMeanInterval returns the mean minutes between consecutive events for
// each calendar day, in date order. The gap between two events is attributed
// to the day of the later event.
func DailyMeanInterval(events []models.Earthquake) []SeriesPoint {
	ordered := make([]models.Earthquake, len(events))
	copy(ordered, events)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Time.Before(ordered[j].Time) })

	sums := make(map[string]float64)
	counts := make(map[string]float64)
	for i := 1; i < len(ordered); i++ {
		day := ordered[i].DateString()
		sums[day] += ordered[i].Time.Sub(ordered[i-1].Time).Minutes()
		counts[day]++
	}

	means := make(map[string]float64, len(sums))
	for day, sum := range sums {
		means[day] = sum / counts[day]
	}
	return sortedSeries(means)
}

// sortedSeries converts a label->value map into a label-ordered series.
func sortedSeries(values map[string]float64) []SeriesPoint {
	labels := make([]string, 0, len(values))
	for label := range values {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	series := make([]SeriesPoint, 0, len(labels))
	for _, label := range labels {
		series = append(series, SeriesPoint{Label: label, Value: values[label]})
	}
	return series
}
