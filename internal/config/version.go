package config

import (
	"os"
	"strings"
)

// fallbackVersion is used when no version source is available.
const fallbackVersion = "0.1.0"

// GetVersion returns the service version. CI/CD sets APP_VERSION on deployed
// builds; local builds fall back to the VERSION file at the module root.
func GetVersion() string {
	if v := os.Getenv("APP_VERSION"); v != "" {
		return v
	}

	if content, err := os.ReadFile("VERSION"); err == nil {
		if v := strings.TrimSpace(string(content)); v != "" {
			return v
		}
	}

	return fallbackVersion
}
