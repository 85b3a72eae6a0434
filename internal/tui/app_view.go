package tui

import (
	"fmt"
	"strings"

	"github.com/RBOVETTI/PromptLibrary/internal/session"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	w := m.width
	h := m.height
	if !m.seenWindowSize {
		w, h = 80, 24
	}

	switch m.modal {
	case modalConfirmReset:
		return placeCentered(w, h, renderConfirmModal(
			w,
			"Reset prompt",
			"Reset this prompt to its original version?\nThe local edit is lost; this cannot be undone.",
			"Reset",
			"Cancel",
			m.confirmFocus,
		))
	case modalPrompt:
		return placeCentered(w, h, m.renderPromptModal(w))
	}

	return m.renderBrowse(w)
}

func (m appModel) renderBrowse(w int) string {
	lib := m.sess.Library()

	header := lipgloss.NewStyle().Bold(true).Render("Prompt Library") +
		"  " + styleMuted().Render(fmt.Sprintf("v%s • %d prompts • %d categories",
		lib.Version, lib.PromptCount(), len(lib.Categories)))

	search := m.renderSearchLine()
	chips := m.renderCategoryChips(w)
	info := m.renderResultsInfo()
	body := m.promptList.View()
	if len(m.promptList.Items()) == 0 {
		body = lipgloss.NewStyle().Padding(1, 2).Render(
			"No prompts found" + "\n" + styleMuted().Render("Try adjusting the search or category filter"))
	}

	footer := styleMuted().Render(
		"/: search  tab: category  enter: open  c: copy  ctrl+e: export  t: theme  q: quit")

	lines := []string{header, "", search, chips, info, body, footer}
	if m.minibufferText != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorAccent).Render(m.minibufferText))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) renderSearchLine() string {
	label := styleMuted().Render("Search:")
	if m.searchFocused {
		label = lipgloss.NewStyle().Foreground(colorAccent).Render("Search:")
	}
	return label + " " + m.searchInput.View()
}

// renderCategoryChips draws the "all" chip plus one per category, with
// recomputed prompt counts, highlighting the active one.
func (m appModel) renderCategoryChips(w int) string {
	chipBase := lipgloss.NewStyle().Padding(0, 1)
	chipActive := chipBase.
		Foreground(colorAccentFg).
		Background(colorAccent).
		Bold(true)

	lib := m.sess.Library()
	var chips []string
	render := func(idx int, label string, count int) {
		txt := fmt.Sprintf("%s %d", label, count)
		if idx == m.catIdx {
			chips = append(chips, chipActive.Render(txt))
		} else {
			chips = append(chips, chipBase.Render(txt))
		}
	}
	render(0, "🌐 All", lib.PromptCount())
	for i := range lib.Categories {
		c := &lib.Categories[i]
		render(i+1, categoryIcon(c)+" "+c.Name, len(c.Prompts))
	}
	return truncate(strings.Join(chips, " "), w)
}

// renderResultsInfo mirrors the original's results line: shown only while a
// filter is active.
func (m appModel) renderResultsInfo() string {
	if !m.sess.FilterActive() {
		return ""
	}
	view := m.sess.View()
	if view.PromptCount() == 0 {
		return styleMuted().Render("No results")
	}
	return styleMuted().Render(fmt.Sprintf("Found %d %s in %d %s",
		view.PromptCount(), plural(view.PromptCount(), "prompt", "prompts"),
		view.CategoryCount(), plural(view.CategoryCount(), "category", "categories")))
}

func (m appModel) renderPromptModal(w int) string {
	p, ok := m.openPrompt()
	if !ok {
		return renderModalBox(w, "Prompt", "No prompt selected.")
	}

	bodyW := modalBodyWidth(w)
	subtitle := styleMuted().Render(p.ID + " • " + m.sess.OpenCategory())

	var body, actions string
	if m.sess.Mode() == session.Editing {
		body = m.textarea.View()
		actions = "ctrl+s: save   esc: cancel"
	} else {
		body = m.viewport.View()
		actions = "e: edit   c: copy   esc: close"
		if m.sess.Modified(p.ID) {
			badge := lipgloss.NewStyle().Foreground(colorModified).Render("● modified")
			subtitle += "  " + badge
			actions = "e: edit   c: copy   r: reset   esc: close"
		}
	}

	content := strings.Join([]string{
		subtitle,
		"",
		body,
		"",
		styleMuted().Width(bodyW).Render(actions),
	}, "\n")
	return renderModalBox(w, displayTitle(p), content)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
