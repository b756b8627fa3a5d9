package config

import "testing"

func TestGetVersionFromEnv(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")

	if v := GetVersion(); v != "1.2.3" {
		t.Errorf("Expected version 1.2.3, got %s", v)
	}
}

func TestGetVersionFallback(t *testing.T) {
	t.Setenv("APP_VERSION", "")

	v := GetVersion()
	if v == "" {
		t.Error("Version should never be empty")
	}
}
