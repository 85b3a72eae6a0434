// Package filter computes the browse view: which categories and prompts are
// visible under the current search query and category selection.
package filter

import (
	"strings"

	"github.com/RBOVETTI/PromptLibrary/internal/catalog"
)

// AllCategories is the sentinel for "no category filter".
const AllCategories = "all"

// CategoryView is one visible category with its matching prompts.
// Pointers reach into the library; the view structure itself is fresh on
// every Compute call, so callers may reslice or drop it freely.
type CategoryView struct {
	Category *catalog.Category
	Prompts  []*catalog.Prompt
}

type View []CategoryView

// Compute filters the library. Matching is a case-insensitive substring test
// over title, prompt text and id. Category and prompt order are preserved
// from the document; categories with zero matching prompts are dropped while
// a query is active.
func Compute(lib *catalog.Library, query, category string) View {
	query = strings.ToLower(query)

	var view View
	for i := range lib.Categories {
		c := &lib.Categories[i]
		if category != AllCategories && c.Name != category {
			continue
		}

		if query == "" {
			view = append(view, CategoryView{Category: c, Prompts: allPrompts(c)})
			continue
		}

		var matches []*catalog.Prompt
		for j := range c.Prompts {
			if Matches(&c.Prompts[j], query) {
				matches = append(matches, &c.Prompts[j])
			}
		}
		if len(matches) > 0 {
			view = append(view, CategoryView{Category: c, Prompts: matches})
		}
	}
	return view
}

// Matches reports whether the prompt matches an already-lowercased query.
func Matches(p *catalog.Prompt, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Text), query) ||
		strings.Contains(strings.ToLower(p.ID), query)
}

func allPrompts(c *catalog.Category) []*catalog.Prompt {
	out := make([]*catalog.Prompt, len(c.Prompts))
	for j := range c.Prompts {
		out[j] = &c.Prompts[j]
	}
	return out
}

func (v View) PromptCount() int {
	n := 0
	for _, cv := range v {
		n += len(cv.Prompts)
	}
	return n
}

func (v View) CategoryCount() int { return len(v) }
