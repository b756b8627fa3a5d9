package server

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jdalain/teq-dashboard/internal/catalog"
)

// filterQuery is the validated shape of the dashboard filter parameters.
type filterQuery struct {
	Start  string  `validate:"required,datetime=2006-01-02"`
	End    string  `validate:"required,datetime=2006-01-02"`
	MinMag float64 `validate:"gte=0,lte=10"`
	MaxMag float64 `validate:"gte=0,lte=10,gtefield=MinMag"`
}

// defaultWindow is the view shown when no filters are given: from the
// configured default start date up to today, all magnitudes.
func (s *Server) defaultWindow() catalog.Window {
	start, _ := s.Config.DefaultStart()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return catalog.Window{
		Start:        start,
		End:          endOfDay(today),
		MinMagnitude: 0,
		MaxMagnitude: 10,
	}
}

// parseWindow builds a filter window from query parameters, filling absent
// parameters from the defaults and validating the result.
func (s *Server) parseWindow(values url.Values) (catalog.Window, error) {
	defaults := s.defaultWindow()

	q := filterQuery{
		Start:  defaults.Start.Format("2006-01-02"),
		End:    defaults.End.Format("2006-01-02"),
		MinMag: defaults.MinMagnitude,
		MaxMag: defaults.MaxMagnitude,
	}

	if v := values.Get("start"); v != "" {
		q.Start = v
	}
	if v := values.Get("end"); v != "" {
		q.End = v
	}
	if v := values.Get("min_mag"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return catalog.Window{}, fmt.Errorf("invalid min_mag %q", v)
		}
		q.MinMag = f
	}
	if v := values.Get("max_mag"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return catalog.Window{}, fmt.Errorf("invalid max_mag %q", v)
		}
		q.MaxMag = f
	}

	if err := s.validate.Struct(q); err != nil {
		return catalog.Window{}, fmt.Errorf("invalid filter parameters: %w", err)
	}

	start, _ := time.ParseInLocation("2006-01-02", q.Start, time.UTC)
	end, _ := time.ParseInLocation("2006-01-02", q.End, time.UTC)
	if end.Before(start) {
		return catalog.Window{}, fmt.Errorf("end date %s before start date %s", q.End, q.Start)
	}

	return catalog.Window{
		Start:        start,
		End:          endOfDay(end),
		MinMagnitude: q.MinMag,
		MaxMagnitude: q.MaxMag,
	}, nil
}

// endOfDay pushes a date to the last second of its day so the filter window
// includes the whole end day.
func endOfDay(date time.Time) time.Time {
	return date.Add(24*time.Hour - time.Second)
}
