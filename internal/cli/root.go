package cli

import (
	"os"
	"strings"

	"github.com/RBOVETTI/PromptLibrary/internal/catalog"
	"github.com/RBOVETTI/PromptLibrary/internal/format"
	"github.com/RBOVETTI/PromptLibrary/internal/prefs"
	"github.com/RBOVETTI/PromptLibrary/internal/tui"

	"github.com/spf13/cobra"
)

const defaultLibrary = "prompt-library-complete.json"

type App struct {
	Library    string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "promptlib",
		Short:        "Browse and locally edit a prompt library (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive browser
  promptlib

  # Scriptable commands
  promptlib list
  promptlib search "code review"
  promptlib show writing-001

  # Apply a local edit and export the merged document
  promptlib export --set writing-001="Improved prompt text" --out .
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Library, "library", envOr("PROMPTLIB_LIBRARY", defaultLibrary), "Library source: file path or http(s) URL")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newStatsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	lib, err := loadLibrary(app)
	if err != nil {
		return err
	}
	return tui.Run(lib, prefs.Load())
}

// loadLibrary is a single attempt; on failure the error is the user-facing
// cause and no partial library exists.
func loadLibrary(app *App) (*catalog.Library, error) {
	return catalog.Load(app.Library)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.PrettyJSON)
}
