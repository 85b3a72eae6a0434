package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

// These tests mutate PROMPTLIB_CONFIG_DIR via t.Setenv, so none of them may
// run in parallel.

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROMPTLIB_CONFIG_DIR", dir)

	if err := Save(&Config{Theme: ThemeDark}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	cfg := Load()
	if cfg.Theme != ThemeDark {
		t.Fatalf("Theme = %q; want dark", cfg.Theme)
	}

	// No stray tmp file left behind.
	if _, err := os.Stat(filepath.Join(dir, "config.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("tmp file left after Save: %v", err)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("PROMPTLIB_CONFIG_DIR", t.TempDir())

	cfg := Load()
	if cfg == nil || cfg.Theme != "" {
		t.Fatalf("missing config must load as empty; got %+v", cfg)
	}
}

func TestLoadCorruptConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROMPTLIB_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg := Load()
	if cfg == nil || cfg.Theme != "" {
		t.Fatalf("corrupt config must load as empty; got %+v", cfg)
	}
}

func TestConfigDirOverride(t *testing.T) {
	t.Setenv("PROMPTLIB_CONFIG_DIR", "/tmp/elsewhere")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if dir != "/tmp/elsewhere" {
		t.Fatalf("ConfigDir = %q; want the override", dir)
	}
}
