package overlay

import (
	"strings"
	"testing"

	"github.com/RBOVETTI/PromptLibrary/internal/catalog"
)

func testLibrary(t *testing.T) *catalog.Library {
	t.Helper()
	lib, err := catalog.Decode(strings.NewReader(`{
		"version": "1.0",
		"categories": [
			{"category": "Writing", "prompts": [
				{"id": "p1", "title": "One", "prompt": "Hello world"},
				{"id": "p2", "title": "Two", "prompt": "Second prompt"}
			]}
		]
	}`))
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return lib
}

func TestSetThenGet(t *testing.T) {
	t.Parallel()

	o := New(testLibrary(t))
	if changed := o.Set("p1", "Hello mars"); !changed {
		t.Fatalf("first Set must change membership")
	}
	if got := o.Get("p1"); got != "Hello mars" {
		t.Fatalf("Get = %q; want overlay text", got)
	}
	if !o.Has("p1") || o.Count() != 1 {
		t.Fatalf("Has/Count wrong after set: %v %d", o.Has("p1"), o.Count())
	}

	// Overwriting the same id must not report a membership change.
	if changed := o.Set("p1", "Hello venus"); changed {
		t.Fatalf("overwrite reported a membership change")
	}
	if got := o.Get("p1"); got != "Hello venus" {
		t.Fatalf("Get after overwrite = %q", got)
	}
}

func TestSetEqualToOriginalCollapses(t *testing.T) {
	t.Parallel()

	o := New(testLibrary(t))
	o.Set("p1", "Hello mars")
	if changed := o.Set("p1", "Hello world"); !changed {
		t.Fatalf("collapse must report membership change")
	}
	if o.Has("p1") {
		t.Fatalf("edit equal to original must collapse to unmodified")
	}
	if got := o.Get("p1"); got != "Hello world" {
		t.Fatalf("Get after collapse = %q; want original", got)
	}

	// Setting the original text on a clean entry is a no-op.
	if changed := o.Set("p2", "Second prompt"); changed {
		t.Fatalf("no-op edit reported a change")
	}
	if o.Count() != 0 {
		t.Fatalf("Count = %d; want 0", o.Count())
	}
}

func TestResetRestoresOriginal(t *testing.T) {
	t.Parallel()

	o := New(testLibrary(t))
	o.Set("p1", "A")
	if changed := o.Reset("p1"); !changed {
		t.Fatalf("Reset of a modified entry must report change")
	}
	if o.Has("p1") {
		t.Fatalf("Has after reset")
	}
	if got := o.Get("p1"); got != "Hello world" {
		t.Fatalf("Get after reset = %q; want original", got)
	}
	if changed := o.Reset("p1"); changed {
		t.Fatalf("second Reset reported a change")
	}
}

func TestGetUnknownID(t *testing.T) {
	t.Parallel()

	o := New(testLibrary(t))
	if got := o.Get("ghost"); got != "" {
		t.Fatalf("Get(ghost) = %q; want empty", got)
	}
}

func TestIDsSorted(t *testing.T) {
	t.Parallel()

	o := New(testLibrary(t))
	o.Set("p2", "x")
	o.Set("p1", "y")
	ids := o.IDs()
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
		t.Fatalf("IDs = %v; want [p1 p2]", ids)
	}
}
