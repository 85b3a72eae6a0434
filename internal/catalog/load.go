package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// LoadError is returned for anything that prevents a library from being
// installed: unreadable source, non-2xx response, malformed JSON, or a
// document that fails validation. No partial library is ever returned
// alongside it.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErrf(err error, format string, args ...any) *LoadError {
	return &LoadError{Reason: fmt.Sprintf(format, args...), Err: err}
}

// Load reads a library from a file path or an http(s) URL.
//
// The fetch is a single attempt; a failed or slow source surfaces as a
// LoadError, never a retry.
func Load(source string) (*Library, error) {
	if isURL(source) {
		return loadURL(source)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, loadErrf(err, "open %s", source)
	}
	defer f.Close()
	return Decode(f)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func loadURL(url string) (*Library, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, loadErrf(err, "fetch %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, loadErrf(nil, "fetch %s: unexpected status %s", url, resp.Status)
	}
	return Decode(resp.Body)
}

// Decode parses and validates a library document.
func Decode(r io.Reader) (*Library, error) {
	var lib Library
	dec := json.NewDecoder(r)
	if err := dec.Decode(&lib); err != nil {
		return nil, loadErrf(err, "malformed library JSON")
	}
	if err := validate(&lib); err != nil {
		return nil, err
	}
	return &lib, nil
}

// validate enforces the structural assumptions the rest of the app relies
// on. Missing optional prompt/category fields are tolerated here and
// defaulted at render time instead.
func validate(lib *Library) error {
	if lib.Categories == nil {
		return loadErrf(nil, "document has no categories")
	}

	// Category names act as identifiers for the category filter; prompt ids
	// key the edit overlay. Duplicates would make both ambiguous.
	names := map[string]bool{}
	ids := map[string]bool{}
	for i := range lib.Categories {
		c := &lib.Categories[i]
		if names[c.Name] {
			return loadErrf(nil, "duplicate category name %q", c.Name)
		}
		names[c.Name] = true
		for j := range c.Prompts {
			id := c.Prompts[j].ID
			if id == "" {
				continue
			}
			if ids[id] {
				return loadErrf(nil, "duplicate prompt id %q", id)
			}
			ids[id] = true
		}
	}
	return nil
}
