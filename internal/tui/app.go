// Package tui is the presentation layer: it renders the session's filtered
// view and modal state, and translates keystrokes into session intents.
package tui

import (
	"github.com/RBOVETTI/PromptLibrary/internal/catalog"
	"github.com/RBOVETTI/PromptLibrary/internal/prefs"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive browser for an already-loaded library.
func Run(lib *catalog.Library, cfg *prefs.Config) error {
	applyColorProfilePreference()
	applyThemePreference(cfg)

	m := newAppModel(lib, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
