// Package prefs persists the one preference that survives across sessions:
// the theme flag. Everything else the app holds is in-memory by design.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Config struct {
	// Theme is "light", "dark", or "" (auto-detect from the terminal).
	Theme string `json:"theme,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.promptlib).
	if v := strings.TrimSpace(os.Getenv("PROMPTLIB_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".promptlib"), nil
}

func configPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load is best-effort: a missing or corrupt config is treated as empty so a
// bad file can never keep the app from starting.
func Load() *Config {
	path, err := configPath()
	if err != nil {
		return &Config{}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return &Config{}
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return &Config{}
	}
	return &cfg
}

func Save(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
