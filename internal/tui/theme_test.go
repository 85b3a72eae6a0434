package tui

import (
	"testing"

	"github.com/RBOVETTI/PromptLibrary/internal/prefs"

	"github.com/charmbracelet/lipgloss"
)

// applyThemePreference mutates lipgloss's process-wide background flag, so
// these tests restore it and never run in parallel.

func withBackgroundRestore(t *testing.T) {
	t.Helper()
	prev := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(prev) })
}

func clearThemeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PROMPTLIB_TUI_THEME", "")
	t.Setenv("PROMPTLIB_TUI_DARKBG", "")
	t.Setenv("COLORFGBG", "")
}

func TestApplyThemePreference_SavedConfigWins(t *testing.T) {
	withBackgroundRestore(t)
	clearThemeEnv(t)
	// Saved preference beats any env hint.
	t.Setenv("PROMPTLIB_TUI_THEME", "dark")

	applyThemePreference(&prefs.Config{Theme: prefs.ThemeLight})
	if lipgloss.HasDarkBackground() {
		t.Fatalf("saved light theme ignored")
	}

	applyThemePreference(&prefs.Config{Theme: prefs.ThemeDark})
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("saved dark theme ignored")
	}
}

func TestApplyThemePreference_EnvFallback(t *testing.T) {
	withBackgroundRestore(t)
	clearThemeEnv(t)

	t.Setenv("PROMPTLIB_TUI_THEME", "light")
	applyThemePreference(&prefs.Config{})
	if lipgloss.HasDarkBackground() {
		t.Fatalf("PROMPTLIB_TUI_THEME=light ignored")
	}

	t.Setenv("PROMPTLIB_TUI_THEME", "")
	t.Setenv("PROMPTLIB_TUI_DARKBG", "true")
	applyThemePreference(&prefs.Config{})
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("PROMPTLIB_TUI_DARKBG=true ignored")
	}
}

func TestApplyThemePreference_ColorFgBgHeuristic(t *testing.T) {
	withBackgroundRestore(t)
	clearThemeEnv(t)

	t.Setenv("COLORFGBG", "15;0")
	applyThemePreference(&prefs.Config{})
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("COLORFGBG=15;0 should read as dark")
	}

	t.Setenv("COLORFGBG", "0;15")
	applyThemePreference(&prefs.Config{})
	if lipgloss.HasDarkBackground() {
		t.Fatalf("COLORFGBG=0;15 should read as light")
	}
}
