package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/RBOVETTI/PromptLibrary/internal/export"
	"github.com/RBOVETTI/PromptLibrary/internal/prefs"
	"github.com/RBOVETTI/PromptLibrary/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type minibufferClearMsg struct{ seq int }

func (m appModel) Init() tea.Cmd {
	// Clear the "Loaded N prompts" toast after the usual delay.
	return m.clearMinibufferCmd()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		m.resize()
		if m.modal == modalPrompt && m.sess.Mode() != session.Editing {
			m.syncViewport()
		}
		return m, nil

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.modal {
		case modalConfirmReset:
			return m.updateConfirmReset(msg)
		case modalPrompt:
			return m.updatePromptModal(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocused {
		switch msg.String() {
		case "esc":
			// Clear search entirely (the original's "clear" button).
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.searchFocused = false
			m.sess.ClearSearch()
			m.refreshRows()
			return m, nil
		case "enter", "down":
			// Keep the query, hand focus back to the grid.
			m.searchInput.Blur()
			m.searchFocused = false
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.sess.Search(m.searchInput.Value())
			m.refreshRows()
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/", "ctrl+k":
		m.searchFocused = true
		return m, m.searchInput.Focus()
	case "esc":
		if m.sess.Query() != "" {
			m.searchInput.SetValue("")
			m.sess.ClearSearch()
			m.refreshRows()
		}
		return m, nil
	case "tab":
		m.catIdx = (m.catIdx + 1) % m.chipCount()
		m.sess.SelectCategory(m.categoryAt(m.catIdx))
		m.refreshRows()
		return m, nil
	case "shift+tab":
		m.catIdx = (m.catIdx + m.chipCount() - 1) % m.chipCount()
		m.sess.SelectCategory(m.categoryAt(m.catIdx))
		m.refreshRows()
		return m, nil
	case "enter":
		row, ok := m.promptList.SelectedItem().(promptRow)
		if !ok {
			return m, nil
		}
		if err := m.sess.Open(row.prompt.ID); err != nil {
			return m, m.showMinibuffer(err.Error())
		}
		m.modal = modalPrompt
		m.syncViewport()
		return m, nil
	case "c":
		row, ok := m.promptList.SelectedItem().(promptRow)
		if !ok {
			return m, nil
		}
		return m, m.copyText(m.sess.Overlay().Get(row.prompt.ID))
	case "t":
		return m, m.toggleTheme()
	case "ctrl+e":
		return m, m.exportModified()
	}

	var cmd tea.Cmd
	m.promptList, cmd = m.promptList.Update(msg)
	return m, cmd
}

func (m appModel) updatePromptModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess.Mode() == session.Editing {
		switch msg.String() {
		case "ctrl+s":
			changed, err := m.sess.Save()
			if err != nil {
				return m, m.showMinibuffer(err.Error())
			}
			if changed {
				// Modified badges and counts in the grid are stale now.
				m.refreshRows()
			}
			m.syncViewport()
			return m, m.showMinibuffer("Changes saved")
		case "esc":
			// Discard the draft; display is unchanged.
			_ = m.sess.Cancel()
			m.syncViewport()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			m.sess.SetDraft(m.textarea.Value())
			return m, cmd
		}
	}

	// Viewing.
	switch msg.String() {
	case "esc", "q":
		m.sess.Close()
		m.modal = modalNone
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "e":
		if err := m.sess.StartEdit(); err != nil {
			return m, m.showMinibuffer(err.Error())
		}
		m.textarea.SetValue(m.sess.Draft())
		m.textarea.CursorStart()
		return m, m.textarea.Focus()
	case "c":
		return m, m.copyText(m.sess.DisplayText())
	case "r":
		if !m.sess.Modified(m.openPromptID()) {
			return m, nil
		}
		m.modal = modalConfirmReset
		m.confirmFocus = confirmFocusCancel
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirmFocus != confirmFocusConfirm {
			m.modal = modalPrompt
			return m, nil
		}
		changed, err := m.sess.Reset()
		m.modal = modalPrompt
		if err != nil {
			return m, m.showMinibuffer(err.Error())
		}
		if changed {
			m.refreshRows()
			m.syncViewport()
			return m, m.showMinibuffer("Prompt reset to original")
		}
		return m, nil
	case "esc":
		m.modal = modalPrompt
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// copyText copies through the external-command chain; the chain itself is
// the fallback path, so any success is reported identically.
func (m *appModel) copyText(text string) tea.Cmd {
	if err := copyToClipboard(text); err != nil {
		return m.showMinibuffer("Copy failed: " + err.Error())
	}
	return m.showMinibuffer("Copied to clipboard")
}

func (m *appModel) toggleTheme() tea.Cmd {
	if lipgloss.HasDarkBackground() {
		m.cfg.Theme = prefs.ThemeLight
	} else {
		m.cfg.Theme = prefs.ThemeDark
	}
	applyThemePreference(m.cfg)
	if err := prefs.Save(m.cfg); err != nil {
		return m.showMinibuffer("Theme changed (not saved: " + err.Error() + ")")
	}
	return m.showMinibuffer("Theme: " + m.cfg.Theme)
}

func (m *appModel) exportModified() tea.Cmd {
	artifact, err := export.Build(m.sess.Library(), m.sess.Overlay(), time.Now())
	if err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			return m.showMinibuffer("No modified prompts to export")
		}
		return m.showMinibuffer("Export failed: " + err.Error())
	}
	path, err := export.WriteFile(".", artifact, time.Now())
	if err != nil {
		return m.showMinibuffer("Export failed: " + err.Error())
	}
	return m.showMinibuffer(fmt.Sprintf("Exported %d modified prompt(s) to %s",
		m.sess.ModifiedCount(), path))
}

func (m *appModel) showMinibuffer(text string) tea.Cmd {
	m.minibufferText = text
	m.minibufferSeq++
	return m.clearMinibufferCmd()
}

func (m appModel) clearMinibufferCmd() tea.Cmd {
	seq := m.minibufferSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return minibufferClearMsg{seq: seq}
	})
}
