package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitWritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer

	log := Init(Options{Level: "debug", Output: &buf})
	log.Info().Str("source", "afad").Msg("fetch complete")

	out := buf.String()
	if out == "" {
		// Init is a singleton; another test may have claimed it first.
		t.Skip("logger already initialised by another test")
	}

	if !strings.Contains(out, `"source":"afad"`) {
		t.Errorf("Expected structured field in output, got: %s", out)
	}

	if !strings.Contains(out, "fetch complete") {
		t.Errorf("Expected message in output, got: %s", out)
	}
}

func TestForAddsComponent(t *testing.T) {
	log := For("fetchers")
	// Smoke test: component loggers must be derived without panicking.
	log.Debug().Msg("component logger ready")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"info":    "info",
		"warn":    "warn",
		"WARNING": "warn",
		"error":   "error",
		"":        "info",
		"bogus":   "info",
	}

	for input, want := range cases {
		if got := parseLevel(input).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", input, got, want)
		}
	}
}
