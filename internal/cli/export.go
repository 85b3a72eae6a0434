package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/RBOVETTI/PromptLibrary/internal/export"
	"github.com/RBOVETTI/PromptLibrary/internal/overlay"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		sets      []string
		fromFiles []string
		outDir    string
		toStdout  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Apply local edits and export the merged library",
		Long: strings.TrimSpace(`
Applies edits through the same overlay the TUI uses (an edit equal to the
original text collapses to "unmodified") and writes the merged document with
modified/modifiedDate stamps plus exportInfo metadata.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(app)
			if err != nil {
				return err
			}

			ov := overlay.New(lib)
			for _, s := range sets {
				id, text, err := splitEdit(s)
				if err != nil {
					return err
				}
				if _, _, ok := lib.FindPrompt(id); !ok {
					return errNotFound("prompt", id)
				}
				ov.Set(id, text)
			}
			for _, s := range fromFiles {
				id, path, err := splitEdit(s)
				if err != nil {
					return err
				}
				if _, _, ok := lib.FindPrompt(id); !ok {
					return errNotFound("prompt", id)
				}
				b, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				ov.Set(id, string(b))
			}

			artifact, err := export.Build(lib, ov, time.Now())
			if err != nil {
				return err
			}

			if toStdout {
				return export.Write(cmd.OutOrStdout(), artifact)
			}
			path, err := export.WriteFile(outDir, artifact, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d modified prompt(s) to %s\n", ov.Count(), path)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Local edit as id=text (repeatable)")
	cmd.Flags().StringArrayVar(&fromFiles, "from-file", nil, "Local edit as id=path, text read from the file (repeatable)")
	cmd.Flags().StringVar(&outDir, "out", ".", "Directory for the exported artifact")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the artifact to stdout instead of a file")
	return cmd
}

func splitEdit(s string) (id, value string, err error) {
	id, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(id) == "" {
		return "", "", fmt.Errorf("invalid edit %q (want id=value)", s)
	}
	return id, value, nil
}
