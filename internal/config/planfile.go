package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The plan file is the CLI's address bar: it holds exactly one line, the
// current share URL with the encoded plan token. Every mutating command
// overwrites it; nothing else is persisted.

// GetPlanPath returns the plan file path, honoring an explicit override.
func GetPlanPath(override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(GetConfigDir(), "plan.url")
}

// ReadPlanURL reads the stored share URL. A missing file surfaces as the
// underlying os.IsNotExist error so callers can treat it as a fresh start.
func ReadPlanURL(override string) (string, error) {
	data, err := os.ReadFile(GetPlanPath(override))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// WritePlanURL replaces the stored share URL.
func WritePlanURL(override, url string) error {
	path := GetPlanPath(override)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(url+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}

	return nil
}
