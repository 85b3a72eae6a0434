package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RBOVETTI/PromptLibrary/internal/catalog"
	"github.com/RBOVETTI/PromptLibrary/internal/export"
)

const testDoc = `{
  "version": "2.1",
  "totalPrompts": 42,
  "categories": [
    {
      "category": "Writing",
      "icon": "✍️",
      "prompts": [
        {"id": "writing-001", "title": "Blog Outline", "prompt": "Outline a blog post."},
        {"id": "writing-002", "title": "Tone Rewrite", "prompt": "Rewrite in a friendly tone."}
      ]
    },
    {
      "category": "Code",
      "prompts": [
        {"id": "code-001", "title": "Code Review", "prompt": "Review this diff."}
      ]
    }
  ]
}`

func writeTestLibrary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.json")
	if err := os.WriteFile(path, []byte(testDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	lib := writeTestLibrary(t)

	out, err := run(t, "--library", lib, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []categorySummary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output not JSON: %v\n%s", err, out)
	}
	if len(got) != 2 {
		t.Fatalf("categories = %d; want 2", len(got))
	}
	if got[0].Name != "Writing" || got[0].PromptCount != 2 {
		t.Fatalf("first category = %+v", got[0])
	}
	if got[1].Name != "Code" || got[1].PromptCount != 1 {
		t.Fatalf("second category = %+v", got[1])
	}
}

func TestShowCommand(t *testing.T) {
	lib := writeTestLibrary(t)

	out, err := run(t, "--library", lib, "show", "code-001")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var got promptDetail
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output not JSON: %v\n%s", err, out)
	}
	if got.ID != "code-001" || got.Category != "Code" || got.Prompt != "Review this diff." {
		t.Fatalf("detail = %+v", got)
	}

	_, err = run(t, "--library", lib, "show", "ghost")
	var nf notFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("show ghost: %v; want notFoundError", err)
	}
}

func TestSearchCommand(t *testing.T) {
	lib := writeTestLibrary(t)

	out, err := run(t, "--library", lib, "search", "RevIEW")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var got searchResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output not JSON: %v\n%s", err, out)
	}
	if got.PromptCount != 1 || got.CategoryCount != 1 {
		t.Fatalf("counts = %d/%d; want 1/1", got.PromptCount, got.CategoryCount)
	}
	if got.Categories[0].Prompts[0].ID != "code-001" {
		t.Fatalf("match = %+v", got.Categories[0].Prompts[0])
	}

	// Empty result is a valid state, not an error.
	out, err = run(t, "--library", lib, "search", "zzz_no_match")
	if err != nil {
		t.Fatalf("empty search must not error: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output not JSON: %v", err)
	}
	if got.PromptCount != 0 || len(got.Categories) != 0 {
		t.Fatalf("empty search result = %+v", got)
	}
}

func TestSearchCommand_CategoryRestriction(t *testing.T) {
	lib := writeTestLibrary(t)

	out, err := run(t, "--library", lib, "search", "re", "--category", "Code")
	if err != nil {
		t.Fatalf("search --category: %v", err)
	}
	var got searchResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output not JSON: %v", err)
	}
	if got.PromptCount != 1 || got.Categories[0].Name != "Code" {
		t.Fatalf("restricted search = %+v", got)
	}

	_, err = run(t, "--library", lib, "search", "re", "--category", "Nope")
	var nf notFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("unknown category: %v; want notFoundError", err)
	}
}

func TestStatsCommand(t *testing.T) {
	lib := writeTestLibrary(t)

	out, err := run(t, "--library", lib, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var got libraryStats
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output not JSON: %v", err)
	}
	if got.Version != "2.1" || got.Categories != 2 || got.Prompts != 3 || got.DeclaredTotal != 42 {
		t.Fatalf("stats = %+v", got)
	}
}

func TestExportCommand_Stdout(t *testing.T) {
	lib := writeTestLibrary(t)

	out, err := run(t, "--library", lib, "export",
		"--set", "writing-001=Improved outline prompt.", "--stdout")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	artifact, err := catalog.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatalf("artifact not a valid library: %v\n%s", err, out)
	}
	p, _, _ := artifact.FindPrompt("writing-001")
	if p.Text != "Improved outline prompt." || !p.Modified || p.ModifiedDate == "" {
		t.Fatalf("edited prompt = %+v", p)
	}
	q, _, _ := artifact.FindPrompt("writing-002")
	if q.Modified {
		t.Fatalf("untouched prompt stamped modified")
	}
	if artifact.ExportInfo == nil || artifact.ExportInfo.ModifiedPromptsCount != 1 || artifact.ExportInfo.OriginalVersion != "2.1" {
		t.Fatalf("exportInfo = %+v", artifact.ExportInfo)
	}
}

func TestExportCommand_CollapsedEditIsEmpty(t *testing.T) {
	lib := writeTestLibrary(t)

	// Setting text identical to the original collapses to unmodified, so
	// there is nothing to export.
	_, err := run(t, "--library", lib, "export",
		"--set", "writing-001=Outline a blog post.", "--stdout")
	if !errors.Is(err, export.ErrNothingToExport) {
		t.Fatalf("collapsed export: %v; want ErrNothingToExport", err)
	}
}

func TestExportCommand_Validation(t *testing.T) {
	lib := writeTestLibrary(t)

	_, err := run(t, "--library", lib, "export", "--set", "ghost=x", "--stdout")
	var nf notFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("unknown id: %v; want notFoundError", err)
	}

	_, err = run(t, "--library", lib, "export", "--set", "no-equals-sign", "--stdout")
	if err == nil || !strings.Contains(err.Error(), "invalid edit") {
		t.Fatalf("malformed edit: %v", err)
	}
}

func TestExportCommand_FromFile(t *testing.T) {
	lib := writeTestLibrary(t)
	textPath := filepath.Join(t.TempDir(), "edit.txt")
	if err := os.WriteFile(textPath, []byte("Text from a file."), 0o644); err != nil {
		t.Fatalf("write edit file: %v", err)
	}

	out, err := run(t, "--library", lib, "export",
		"--from-file", "code-001="+textPath, "--stdout")
	if err != nil {
		t.Fatalf("export --from-file: %v", err)
	}
	artifact, err := catalog.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatalf("artifact not a valid library: %v", err)
	}
	p, _, _ := artifact.FindPrompt("code-001")
	if p.Text != "Text from a file." {
		t.Fatalf("text = %q", p.Text)
	}
}

func TestExportCommand_OutDir(t *testing.T) {
	lib := writeTestLibrary(t)
	dir := t.TempDir()

	_, err := run(t, "--library", lib, "export",
		"--set", "writing-001=Changed.", "--out", dir)
	if err != nil {
		t.Fatalf("export --out: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "prompt-library-modified-") {
		t.Fatalf("artifact dir contents = %v", entries)
	}
}

func TestLoadFailureSurfacesLoadError(t *testing.T) {
	_, err := run(t, "--library", filepath.Join(t.TempDir(), "missing.json"), "list")
	var le *catalog.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("missing library: %v; want *LoadError", err)
	}
}
