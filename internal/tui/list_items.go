package tui

import (
	"fmt"
	"io"

	"github.com/RBOVETTI/PromptLibrary/internal/catalog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Render-time defaults for optional document fields. Missing data is never a
// load error; it just displays as a placeholder.
const (
	defaultTitle       = "Untitled Prompt"
	defaultIcon        = "📁"
	defaultDescription = "No description available"
	defaultText        = "No content available"
)

func displayTitle(p *catalog.Prompt) string {
	if p.Title == "" {
		return defaultTitle
	}
	return p.Title
}

func displayText(text string) string {
	if text == "" {
		return defaultText
	}
	return text
}

func categoryIcon(c *catalog.Category) string {
	if c.Icon == "" {
		return defaultIcon
	}
	return c.Icon
}

func categoryDescription(c *catalog.Category) string {
	if c.Description == "" {
		return defaultDescription
	}
	return c.Description
}

// promptRow is one card in the browse list: a prompt plus the display state
// it is rendered with (owning category, effective text, modified badge).
type promptRow struct {
	prompt    *catalog.Prompt
	category  *catalog.Category
	effective string
	modified  bool
}

func (r promptRow) FilterValue() string { return r.prompt.ID + " " + r.prompt.Title }

type promptDelegate struct{}

func (d promptDelegate) Height() int  { return 2 }
func (d promptDelegate) Spacing() int { return 1 }
func (d promptDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d promptDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(promptRow)
	if !ok {
		return
	}
	contentW := m.Width()
	if contentW < 8 {
		return
	}

	idStyle := styleMuted()
	titleStyle := lipgloss.NewStyle()
	previewStyle := styleMuted()
	if index == m.Index() {
		titleStyle = lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)
		idStyle = titleStyle.Bold(false)
	}

	head := idStyle.Render(row.prompt.ID) + " " + titleStyle.Render(displayTitle(row.prompt))
	if row.modified {
		head += " " + lipgloss.NewStyle().Foreground(colorModified).Render("● modified")
	}
	head += "  " + styleMuted().Render(row.category.Name)

	preview := previewStyle.Render(previewText(displayText(row.effective)))

	fmt.Fprint(w, padRight(head, contentW)+"\n"+padRight(preview, contentW))
}

func newPromptList() list.Model {
	l := list.New([]list.Item{}, promptDelegate{}, 0, 0)
	// Search and category filtering are the app's own state; keep the
	// bubbles list as a dumb scroller with minimal chrome.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("prompt", "prompts")
	// ESC is "close/clear" app-wide, and q must not quit while typing.
	l.KeyMap.Quit.SetKeys("ctrl+c")
	// Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
