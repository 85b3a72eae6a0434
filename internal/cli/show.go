package cli

import (
	"github.com/RBOVETTI/PromptLibrary/internal/catalog"

	"github.com/spf13/cobra"
)

type promptDetail struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <prompt-id>",
		Short: "Show one prompt record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(app)
			if err != nil {
				return err
			}
			p, c, ok := lib.FindPrompt(args[0])
			if !ok {
				return errNotFound("prompt", args[0])
			}
			return writeOut(cmd, app, detailFor(p, c))
		},
	}
}

func detailFor(p *catalog.Prompt, c *catalog.Category) promptDetail {
	return promptDetail{
		ID:       p.ID,
		Title:    p.Title,
		Category: c.Name,
		Prompt:   p.Text,
	}
}
