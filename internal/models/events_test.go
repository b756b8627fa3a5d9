package models

import (
	"testing"
	"time"
)

func TestAFADEventParse(t *testing.T) {
	raw := AFADEvent{
		EventID:   "494362",
		Date:      "2023-02-06T01:17:32",
		Latitude:  "37.288",
		Longitude: "37.043",
		Depth:     "8.6",
		Magnitude: "7.7",
		Type:      "Mw",
		Location:  "Pazarcık (Kahramanmaraş)",
		Country:   "Türkiye",
		Province:  "Kahramanmaraş",
	}

	quake, err := raw.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := time.Date(2023, 2, 6, 1, 17, 32, 0, time.UTC)
	if !quake.Time.Equal(want) {
		t.Errorf("Expected time %v, got %v", want, quake.Time)
	}

	if quake.Magnitude != 7.7 {
		t.Errorf("Expected magnitude 7.7, got %f", quake.Magnitude)
	}

	if quake.Latitude != 37.288 || quake.Longitude != 37.043 {
		t.Errorf("Unexpected coordinates: %f, %f", quake.Latitude, quake.Longitude)
	}

	if quake.Depth != 8.6 {
		t.Errorf("Expected depth 8.6, got %f", quake.Depth)
	}

	if quake.Country != CountryTurkiye {
		t.Errorf("Expected country %q, got %q", CountryTurkiye, quake.Country)
	}
}

func TestAFADEventParseRejectsMalformed(t *testing.T) {
	base := AFADEvent{
		Date:      "2023-02-06T01:17:32",
		Latitude:  "37.288",
		Longitude: "37.043",
		Depth:     "8.6",
		Magnitude: "7.7",
	}

	cases := []struct {
		name   string
		mutate func(*AFADEvent)
	}{
		{"bad date", func(e *AFADEvent) { e.Date = "06/02/2023" }},
		{"empty date", func(e *AFADEvent) { e.Date = "" }},
		{"bad latitude", func(e *AFADEvent) { e.Latitude = "north" }},
		{"bad longitude", func(e *AFADEvent) { e.Longitude = "" }},
		{"bad depth", func(e *AFADEvent) { e.Depth = "shallow" }},
		{"bad magnitude", func(e *AFADEvent) { e.Magnitude = "n/a" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := base
			tc.mutate(&ev)
			if _, err := ev.Parse(); err == nil {
				t.Errorf("Expected parse error for %s, got nil", tc.name)
			}
		})
	}
}

func TestLocalTime(t *testing.T) {
	quake := Earthquake{Time: time.Date(2023, 2, 6, 1, 17, 32, 0, time.UTC)}

	local := quake.LocalTime()
	if local.Hour() != 4 {
		t.Errorf("Expected local hour 4 (UTC+3), got %d", local.Hour())
	}

	// Same instant, different wall clock
	if !local.Equal(quake.Time) {
		t.Error("LocalTime should represent the same instant")
	}
}
