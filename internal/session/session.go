// Package session owns all mutable browse state for one loaded library: the
// active filters, the edit overlay, and the modal view/edit state machine.
//
// The session is deliberately presentation-free. The TUI feeds user intents
// in and renders whatever View/DisplayText report back; nothing in here
// touches a terminal, which keeps the whole state machine testable headless.
package session

import (
	"github.com/RBOVETTI/PromptLibrary/internal/catalog"
	"github.com/RBOVETTI/PromptLibrary/internal/filter"
	"github.com/RBOVETTI/PromptLibrary/internal/overlay"
)

// Mode is the modal/edit state. Transitions:
//
//	Closed --Open--> Viewing --StartEdit--> Editing
//	Editing --Save/Cancel--> Viewing --Close--> Closed
//
// Close while Editing cancels first; there is no autosave.
type Mode int

const (
	Closed Mode = iota
	Viewing
	Editing
)

type Session struct {
	lib     *catalog.Library
	overlay *overlay.Overlay

	query          string
	activeCategory string

	mode         Mode
	openID       string
	openCategory string
	draft        string
}

func New(lib *catalog.Library) *Session {
	return &Session{
		lib:            lib,
		overlay:        overlay.New(lib),
		activeCategory: filter.AllCategories,
	}
}

func (s *Session) Library() *catalog.Library { return s.lib }
func (s *Session) Overlay() *overlay.Overlay { return s.overlay }

func (s *Session) Mode() Mode             { return s.mode }
func (s *Session) Query() string          { return s.query }
func (s *Session) ActiveCategory() string { return s.activeCategory }
func (s *Session) Draft() string          { return s.draft }

// OpenID returns the id of the open prompt and whether one is open.
func (s *Session) OpenID() (string, bool) { return s.openID, s.mode != Closed }

// OpenCategory is the owning category name of the open prompt.
func (s *Session) OpenCategory() string { return s.openCategory }

// View runs the filter engine against the current query and category.
func (s *Session) View() filter.View {
	return filter.Compute(s.lib, s.query, s.activeCategory)
}

// FilterActive reports whether any filter narrows the view (drives the
// results-info line).
func (s *Session) FilterActive() bool {
	return s.query != "" || s.activeCategory != filter.AllCategories
}

func (s *Session) Search(q string) { s.query = q }
func (s *Session) ClearSearch()    { s.query = "" }

// SelectCategory sets the category filter. Unknown names fall back to "all"
// rather than presenting an empty grid with no way to tell why.
func (s *Session) SelectCategory(name string) {
	if name != filter.AllCategories && s.lib.FindCategory(name) == nil {
		name = filter.AllCategories
	}
	s.activeCategory = name
}

// Open moves Closed -> Viewing for the prompt with the given id.
func (s *Session) Open(id string) error {
	_, c, ok := s.lib.FindPrompt(id)
	if !ok {
		return &NotFoundError{ID: id}
	}
	s.mode = Viewing
	s.openID = id
	s.openCategory = c.Name
	s.draft = ""
	return nil
}

// Close returns to Closed from any state. Closing while Editing discards the
// draft (an implicit Cancel).
func (s *Session) Close() {
	s.mode = Closed
	s.openID = ""
	s.openCategory = ""
	s.draft = ""
}

// DisplayText is the effective text of the open prompt: the draft while
// Editing, else overlay text or the original.
func (s *Session) DisplayText() string {
	if s.mode == Closed {
		return ""
	}
	if s.mode == Editing {
		return s.draft
	}
	return s.overlay.Get(s.openID)
}

// StartEdit moves Viewing -> Editing with the draft seeded from the current
// effective text.
func (s *Session) StartEdit() error {
	if s.mode != Viewing {
		return &TransitionError{Op: "start edit", Mode: s.mode}
	}
	s.draft = s.overlay.Get(s.openID)
	s.mode = Editing
	return nil
}

func (s *Session) SetDraft(text string) {
	if s.mode == Editing {
		s.draft = text
	}
}

// Save commits the draft through the overlay (collapse rule included) and
// returns to Viewing. The returned flag reports whether overlay membership
// changed, i.e. whether modified badges in the grid are now stale.
func (s *Session) Save() (changed bool, err error) {
	if s.mode != Editing {
		return false, &TransitionError{Op: "save", Mode: s.mode}
	}
	changed = s.overlay.Set(s.openID, s.draft)
	s.draft = ""
	s.mode = Viewing
	return changed, nil
}

// Cancel discards the draft and returns to Viewing.
func (s *Session) Cancel() error {
	if s.mode != Editing {
		return &TransitionError{Op: "cancel", Mode: s.mode}
	}
	s.draft = ""
	s.mode = Viewing
	return nil
}

// Reset drops the local edit for the open prompt. Destructive; callers are
// expected to confirm with the user first. Only valid while Viewing.
func (s *Session) Reset() (changed bool, err error) {
	if s.mode != Viewing {
		return false, &TransitionError{Op: "reset", Mode: s.mode}
	}
	return s.overlay.Reset(s.openID), nil
}

// Modified reports whether the prompt has a local edit.
func (s *Session) Modified(id string) bool { return s.overlay.Has(id) }

func (s *Session) ModifiedCount() int { return s.overlay.Count() }
