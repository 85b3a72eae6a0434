// Package export produces the downloadable artifact: a deep copy of the
// library with local edits applied and export metadata stamped on.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/RBOVETTI/PromptLibrary/internal/catalog"
	"github.com/RBOVETTI/PromptLibrary/internal/overlay"
)

// ErrNothingToExport is returned when the overlay is empty. Producing an
// artifact with zero modifications would be a degenerate copy of the input.
var ErrNothingToExport = errors.New("no modified prompts to export")

// Build applies the overlay to a deep copy of the library. The result shares
// no memory with either input; mutating or discarding it never affects live
// session state.
func Build(lib *catalog.Library, ov *overlay.Overlay, now time.Time) (*catalog.Library, error) {
	if ov.Count() == 0 {
		return nil, ErrNothingToExport
	}

	stamp := now.UTC().Format(time.RFC3339)
	out := lib.Clone()
	for i := range out.Categories {
		c := &out.Categories[i]
		for j := range c.Prompts {
			p := &c.Prompts[j]
			if !ov.Has(p.ID) {
				continue
			}
			p.Text = ov.Get(p.ID)
			p.Modified = true
			p.ModifiedDate = stamp
		}
	}
	out.ExportInfo = &catalog.ExportInfo{
		ExportDate:           stamp,
		ModifiedPromptsCount: ov.Count(),
		OriginalVersion:      lib.Version,
	}
	return out, nil
}

// Write emits the artifact as indented JSON.
func Write(w io.Writer, lib *catalog.Library) error {
	b, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// FileName returns the timestamped artifact name for now.
func FileName(now time.Time) string {
	return fmt.Sprintf("prompt-library-modified-%d.json", now.UnixMilli())
}

// WriteFile writes the artifact into dir under a timestamped name and
// returns the full path. The write is tmp+rename so a crash never leaves a
// truncated artifact behind.
func WriteFile(dir string, lib *catalog.Library, now time.Time) (string, error) {
	b, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(now))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", err
	}
	return path, nil
}
