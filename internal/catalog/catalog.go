// Package catalog holds the loaded prompt library document.
//
// The library is read-only after load: browsing, filtering and editing all
// work on top of it without mutating it, and export produces an independent
// deep copy.
package catalog

import (
	"encoding/json"
	"sort"
)

type Library struct {
	Version string `json:"version"`
	// TotalPrompts is the count declared by the document. It is preserved
	// verbatim for round-trips but may drift from the actual arrays; use
	// PromptCount for anything user-facing.
	TotalPrompts int         `json:"totalPrompts"`
	Categories   []Category  `json:"categories"`
	ExportInfo   *ExportInfo `json:"exportInfo,omitempty"`
}

type Category struct {
	Name        string   `json:"category"`
	Icon        string   `json:"icon,omitempty"`
	Description string   `json:"description,omitempty"`
	Prompts     []Prompt `json:"prompts"`
}

// Prompt is one library entry. Fields beyond the known ones survive
// load -> export verbatim via Extra.
type Prompt struct {
	ID     string
	Title  string
	Text   string
	Modified     bool
	ModifiedDate string

	Extra map[string]json.RawMessage
}

// ExportInfo is stamped onto exported artifacts.
type ExportInfo struct {
	ExportDate           string `json:"exportDate"`
	ModifiedPromptsCount int    `json:"modifiedPromptsCount"`
	OriginalVersion      string `json:"originalVersion"`
}

// promptKnownKeys are handled explicitly in the Prompt codec; everything else
// passes through Extra untouched.
var promptKnownKeys = map[string]bool{
	"id":           true,
	"title":        true,
	"prompt":       true,
	"modified":     true,
	"modifiedDate": true,
}

func (p *Prompt) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &p.ID); err != nil {
			return err
		}
	}
	if v, ok := raw["title"]; ok {
		if err := json.Unmarshal(v, &p.Title); err != nil {
			return err
		}
	}
	if v, ok := raw["prompt"]; ok {
		if err := json.Unmarshal(v, &p.Text); err != nil {
			return err
		}
	}
	if v, ok := raw["modified"]; ok {
		if err := json.Unmarshal(v, &p.Modified); err != nil {
			return err
		}
	}
	if v, ok := raw["modifiedDate"]; ok {
		if err := json.Unmarshal(v, &p.ModifiedDate); err != nil {
			return err
		}
	}
	for k := range raw {
		if promptKnownKeys[k] {
			continue
		}
		if p.Extra == nil {
			p.Extra = map[string]json.RawMessage{}
		}
		p.Extra[k] = raw[k]
	}
	return nil
}

func (p Prompt) MarshalJSON() ([]byte, error) {
	out := map[string]json.RawMessage{}
	put := func(k string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[k] = b
		return nil
	}
	if err := put("id", p.ID); err != nil {
		return nil, err
	}
	if err := put("title", p.Title); err != nil {
		return nil, err
	}
	if err := put("prompt", p.Text); err != nil {
		return nil, err
	}
	if p.Modified {
		if err := put("modified", true); err != nil {
			return nil, err
		}
	}
	if p.ModifiedDate != "" {
		if err := put("modifiedDate", p.ModifiedDate); err != nil {
			return nil, err
		}
	}
	for k, v := range p.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}

// PromptCount recomputes the total from the actual arrays. The document's
// own totalPrompts is display data and is never trusted.
func (l *Library) PromptCount() int {
	n := 0
	for i := range l.Categories {
		n += len(l.Categories[i].Prompts)
	}
	return n
}

func (l *Library) FindCategory(name string) *Category {
	for i := range l.Categories {
		if l.Categories[i].Name == name {
			return &l.Categories[i]
		}
	}
	return nil
}

// FindPrompt returns the prompt with the given id and its owning category.
func (l *Library) FindPrompt(id string) (*Prompt, *Category, bool) {
	for i := range l.Categories {
		c := &l.Categories[i]
		for j := range c.Prompts {
			if c.Prompts[j].ID == id {
				return &c.Prompts[j], c, true
			}
		}
	}
	return nil, nil, false
}

// PromptIDs returns all prompt ids in document order.
func (l *Library) PromptIDs() []string {
	ids := make([]string, 0, l.PromptCount())
	for i := range l.Categories {
		for j := range l.Categories[i].Prompts {
			ids = append(ids, l.Categories[i].Prompts[j].ID)
		}
	}
	return ids
}

// Clone returns a structurally independent deep copy.
func (l *Library) Clone() *Library {
	out := &Library{
		Version:      l.Version,
		TotalPrompts: l.TotalPrompts,
	}
	if l.ExportInfo != nil {
		info := *l.ExportInfo
		out.ExportInfo = &info
	}
	if l.Categories != nil {
		out.Categories = make([]Category, len(l.Categories))
		for i := range l.Categories {
			out.Categories[i] = l.Categories[i].clone()
		}
	}
	return out
}

func (c Category) clone() Category {
	out := c
	if c.Prompts != nil {
		out.Prompts = make([]Prompt, len(c.Prompts))
		for i := range c.Prompts {
			out.Prompts[i] = c.Prompts[i].clone()
		}
	}
	return out
}

func (p Prompt) clone() Prompt {
	out := p
	if p.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(p.Extra))
		for k, v := range p.Extra {
			cp := make(json.RawMessage, len(v))
			copy(cp, v)
			out.Extra[k] = cp
		}
	}
	return out
}

// ExtraKeys lists passthrough field names, sorted (handy for tests/debug).
func (p *Prompt) ExtraKeys() []string {
	keys := make([]string, 0, len(p.Extra))
	for k := range p.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
