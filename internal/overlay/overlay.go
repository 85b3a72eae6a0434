// Package overlay tracks local, unsaved edits on top of an immutable prompt
// library. It is a sparse map: absence means "unmodified", and a value equal
// to the original text is never stored.
package overlay

import (
	"sort"

	"github.com/RBOVETTI/PromptLibrary/internal/catalog"
)

type Overlay struct {
	lib   *catalog.Library
	edits map[string]string
}

func New(lib *catalog.Library) *Overlay {
	return &Overlay{lib: lib, edits: map[string]string{}}
}

// Set records text as the local edit for id. Setting text equal to the
// prompt's original collapses back to "unmodified" (the entry is removed).
// The return value reports whether overlay membership changed, i.e. whether
// modified badges and counts need a re-render.
func (o *Overlay) Set(id, text string) (changed bool) {
	p, _, ok := o.lib.FindPrompt(id)
	if ok && text == p.Text {
		return o.Reset(id)
	}
	_, had := o.edits[id]
	o.edits[id] = text
	return !had
}

// Get returns the effective text for id: the local edit if present,
// otherwise the original.
func (o *Overlay) Get(id string) string {
	if t, ok := o.edits[id]; ok {
		return t
	}
	if p, _, ok := o.lib.FindPrompt(id); ok {
		return p.Text
	}
	return ""
}

// Reset removes any local edit for id and reports whether one existed.
func (o *Overlay) Reset(id string) (changed bool) {
	if _, ok := o.edits[id]; !ok {
		return false
	}
	delete(o.edits, id)
	return true
}

func (o *Overlay) Has(id string) bool {
	_, ok := o.edits[id]
	return ok
}

func (o *Overlay) Count() int { return len(o.edits) }

// IDs returns the modified prompt ids, sorted for deterministic output.
func (o *Overlay) IDs() []string {
	ids := make([]string, 0, len(o.edits))
	for id := range o.edits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
