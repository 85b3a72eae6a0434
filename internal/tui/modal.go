package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalPrompt
	modalConfirmReset
)

const maxModalW = 84

// modalBodyWidth is the usable content width inside a modal at the given
// terminal width.
func modalBodyWidth(termW int) int {
	w := termW - 8
	if w > maxModalW-4 {
		w = maxModalW - 4
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderModalBox draws the shared modal chrome: a header bar and a padded
// body on the surface background. Borders are avoided on purpose: nesting
// bordered components inside a background-colored modal produces artifacts
// on some terminals.
func renderModalBox(termW int, title, content string) string {
	bodyW := modalBodyWidth(termW)
	boxW := bodyW + 4

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Padding(0, 2).
		Width(boxW).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Padding(1, 2).
		Width(boxW).
		Render(content)

	return strings.Join([]string{header, body}, "\n")
}

// placeCentered positions a modal in the terminal, dimming nothing: the
// browse screen simply isn't drawn while a modal is up.
func placeCentered(termW, termH int, s string) string {
	return lipgloss.Place(termW, termH, lipgloss.Center, lipgloss.Center, s)
}
