package models

import (
	"fmt"
	"strconv"
	"time"
)

// afadTimeLayout is the timestamp format used by the AFAD event API.
const afadTimeLayout = "2006-01-02T15:04:05"

// CountryTurkiye is the country tag AFAD assigns to domestic events.
const CountryTurkiye = "Türkiye"

// istanbulOffset is the fixed UTC offset used for local display times.
// Türkiye stays on UTC+3 year-round.
var istanbulOffset = time.FixedZone("TRT", 3*60*60)

// AFADEvent represents one earthquake record as returned by the AFAD
// apiv2 event/filter endpoint. Numeric fields arrive as JSON strings.
type AFADEvent struct {
	EventID   string `json:"eventID"`
	Date      string `json:"date"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Depth     string `json:"depth"`
	Magnitude string `json:"magnitude"`
	Type      string `json:"type"`
	RMS       string `json:"rms"`
	Location  string `json:"location"`
	Country   string `json:"country"`
	Province  string `json:"province"`
	District  string `json:"district"`
}

// Earthquake is a parsed, typed event record.
type Earthquake struct {
	EventID       string    `json:"event_id"`
	Time          time.Time `json:"time"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Depth         float64   `json:"depth"`
	Magnitude     float64   `json:"magnitude"`
	MagnitudeType string    `json:"magnitude_type"`
	Location      string    `json:"location"`
	Country       string    `json:"country"`
	Province      string    `json:"province"`
}

// Parse converts the wire record into a typed Earthquake. Records with a
// malformed timestamp or non-numeric magnitude, depth or coordinates are
// rejected.
func (e AFADEvent) Parse() (Earthquake, error) {
	ts, err := time.ParseInLocation(afadTimeLayout, e.Date, time.UTC)
	if err != nil {
		return Earthquake{}, fmt.Errorf("invalid event date %q: %w", e.Date, err)
	}

	lat, err := strconv.ParseFloat(e.Latitude, 64)
	if err != nil {
		return Earthquake{}, fmt.Errorf("invalid latitude %q: %w", e.Latitude, err)
	}

	lon, err := strconv.ParseFloat(e.Longitude, 64)
	if err != nil {
		return Earthquake{}, fmt.Errorf("invalid longitude %q: %w", e.Longitude, err)
	}

	depth, err := strconv.ParseFloat(e.Depth, 64)
	if err != nil {
		return Earthquake{}, fmt.Errorf("invalid depth %q: %w", e.Depth, err)
	}

	mag, err := strconv.ParseFloat(e.Magnitude, 64)
	if err != nil {
		return Earthquake{}, fmt.Errorf("invalid magnitude %q: %w", e.Magnitude, err)
	}

	return Earthquake{
		EventID:       e.EventID,
		Time:          ts,
		Latitude:      lat,
		Longitude:     lon,
		Depth:         depth,
		Magnitude:     mag,
		MagnitudeType: e.Type,
		Location:      e.Location,
		Country:       e.Country,
		Province:      e.Province,
	}, nil
}

// LocalTime returns the event time in Türkiye local time (UTC+3).
func (q Earthquake) LocalTime() time.Time {
	return q.Time.In(istanbulOffset)
}

// DateString returns the calendar date portion of the event time.
func (q Earthquake) DateString() string {
	return q.Time.Format("2006-01-02")
}

// NotableQuake is one entry of the worldwide significant-earthquakes feed
// shown in the dashboard side panel.
type NotableQuake struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
}
