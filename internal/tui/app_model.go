package tui

import (
	"fmt"

	"github.com/RBOVETTI/PromptLibrary/internal/catalog"
	"github.com/RBOVETTI/PromptLibrary/internal/filter"
	"github.com/RBOVETTI/PromptLibrary/internal/prefs"
	"github.com/RBOVETTI/PromptLibrary/internal/session"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

type appModel struct {
	sess *session.Session
	cfg  *prefs.Config

	width  int
	height int
	// The very first WindowSizeMsg is initial sizing, not a user resize.
	seenWindowSize bool

	searchInput   textinput.Model
	searchFocused bool
	// catIdx indexes the category chip row: 0 is "all", i>0 is
	// Categories[i-1].
	catIdx int

	promptList list.Model

	modal        modalKind
	confirmFocus confirmModalFocus
	viewport     viewport.Model
	textarea     textarea.Model

	minibufferText string
	minibufferSeq  int
}

func newAppModel(lib *catalog.Library, cfg *prefs.Config) appModel {
	m := appModel{
		sess: session.New(lib),
		cfg:  cfg,
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search prompts by title, content, or ID…"
	m.searchInput.CharLimit = 200
	m.searchInput.Width = 48

	m.promptList = newPromptList()

	m.viewport = viewport.New(72, 16)

	m.textarea = textarea.New()
	m.textarea.Placeholder = "Prompt text…"
	m.textarea.CharLimit = 0
	m.textarea.SetWidth(72)
	m.textarea.SetHeight(12)
	m.textarea.ShowLineNumbers = false

	m.refreshRows()
	m.minibufferText = fmt.Sprintf("Loaded %d prompts in %d categories",
		lib.PromptCount(), len(lib.Categories))
	return m
}

// categoryAt maps a chip index to a category name ("all" for 0).
func (m appModel) categoryAt(idx int) string {
	if idx <= 0 {
		return filter.AllCategories
	}
	cats := m.sess.Library().Categories
	if idx > len(cats) {
		return filter.AllCategories
	}
	return cats[idx-1].Name
}

func (m appModel) chipCount() int {
	return len(m.sess.Library().Categories) + 1
}

// refreshRows recomputes the filtered view and rebuilds the list, keeping
// the selection on the same prompt when it survives the filter change.
func (m *appModel) refreshRows() {
	keepID := ""
	if row, ok := m.promptList.SelectedItem().(promptRow); ok {
		keepID = row.prompt.ID
	}

	view := m.sess.View()
	var items []list.Item
	for _, cv := range view {
		for _, p := range cv.Prompts {
			items = append(items, promptRow{
				prompt:    p,
				category:  cv.Category,
				effective: m.sess.Overlay().Get(p.ID),
				modified:  m.sess.Modified(p.ID),
			})
		}
	}
	m.promptList.SetItems(items)

	if keepID != "" {
		for i, it := range items {
			if row, ok := it.(promptRow); ok && row.prompt.ID == keepID {
				m.promptList.Select(i)
				break
			}
		}
	}
}

func (m *appModel) resize() {
	w := m.width
	if w < 40 {
		w = 40
	}
	// Header, chips, search, results info, footer, minibuffer.
	h := m.height - 8
	if h < 8 {
		h = 8
	}
	m.promptList.SetSize(w-2, h)

	bodyW := modalBodyWidth(m.width)
	m.viewport.Width = bodyW
	m.viewport.Height = m.modalBodyHeight()
	m.textarea.SetWidth(bodyW)
	m.textarea.SetHeight(m.modalBodyHeight())
	m.searchInput.Width = min(48, w-12)
}

func (m appModel) modalBodyHeight() int {
	h := m.height - 12
	if h < 6 {
		h = 6
	}
	if h > 24 {
		h = 24
	}
	return h
}

// openPromptID is the id of the prompt the modal is showing.
func (m appModel) openPromptID() string {
	id, _ := m.sess.OpenID()
	return id
}

func (m appModel) openPrompt() (*catalog.Prompt, bool) {
	id, ok := m.sess.OpenID()
	if !ok {
		return nil, false
	}
	p, _, ok := m.sess.Library().FindPrompt(id)
	return p, ok
}

// syncViewport re-renders the open prompt's effective text into the view
// modal's scroll area.
func (m *appModel) syncViewport() {
	m.viewport.SetContent(renderMarkdown(displayText(m.sess.DisplayText()), m.viewport.Width))
	m.viewport.GotoTop()
}
