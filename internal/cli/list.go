package cli

import (
	"github.com/spf13/cobra"
)

type categorySummary struct {
	Name        string `json:"category"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	PromptCount int    `json:"promptCount"`
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with recomputed prompt counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(app)
			if err != nil {
				return err
			}
			out := make([]categorySummary, 0, len(lib.Categories))
			for i := range lib.Categories {
				c := &lib.Categories[i]
				out = append(out, categorySummary{
					Name:        c.Name,
					Icon:        c.Icon,
					Description: c.Description,
					PromptCount: len(c.Prompts),
				})
			}
			return writeOut(cmd, app, out)
		},
	}
}
