package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// truncate cuts s to width columns (ANSI-aware), appending an ellipsis when
// something was dropped.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return xansi.Cut(s, 0, 1)
	}
	return xansi.Cut(s, 0, width-1) + "…"
}

// padRight forces s to exactly width columns (ANSI-aware). Keeps row
// rendering stable inside lists and joined panes.
func padRight(s string, width int) string {
	s = truncate(s, width)
	if w := xansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// firstLine collapses s to its first non-empty line, whitespace-normalized.
// Prompt bodies are multi-line; list rows are not.
func firstLine(s string) string {
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.Join(strings.Fields(ln), " ")
		if ln != "" {
			return ln
		}
	}
	return ""
}

// previewText is the card preview: first 150 characters of the flattened
// text with an ellipsis when cut.
func previewText(s string) string {
	flat := strings.Join(strings.Fields(s), " ")
	r := []rune(flat)
	if len(r) <= 150 {
		return flat
	}
	return string(r[:150]) + "..."
}
