package cli

import (
	"github.com/spf13/cobra"
)

type libraryStats struct {
	Version       string `json:"version"`
	Categories    int    `json:"categories"`
	Prompts       int    `json:"prompts"`
	DeclaredTotal int    `json:"declaredTotal"`
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Library totals (recomputed, with the declared total for comparison)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, libraryStats{
				Version:       lib.Version,
				Categories:    len(lib.Categories),
				Prompts:       lib.PromptCount(),
				DeclaredTotal: lib.TotalPrompts,
			})
		},
	}
}
