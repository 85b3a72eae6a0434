package cli

import (
	"github.com/RBOVETTI/PromptLibrary/internal/filter"

	"github.com/spf13/cobra"
)

type searchResult struct {
	Query         string                 `json:"query"`
	Category      string                 `json:"category"`
	CategoryCount int                    `json:"categoryCount"`
	PromptCount   int                    `json:"promptCount"`
	Categories    []searchResultCategory `json:"categories"`
}

type searchResultCategory struct {
	Name    string         `json:"category"`
	Prompts []promptDetail `json:"prompts"`
}

func newSearchCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search prompts by title, text or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(app)
			if err != nil {
				return err
			}
			if category != filter.AllCategories && lib.FindCategory(category) == nil {
				return errNotFound("category", category)
			}

			view := filter.Compute(lib, args[0], category)
			res := searchResult{
				Query:         args[0],
				Category:      category,
				CategoryCount: view.CategoryCount(),
				PromptCount:   view.PromptCount(),
				Categories:    []searchResultCategory{},
			}
			for _, cv := range view {
				rc := searchResultCategory{Name: cv.Category.Name}
				for _, p := range cv.Prompts {
					rc.Prompts = append(rc.Prompts, detailFor(p, cv.Category))
				}
				res.Categories = append(res.Categories, rc)
			}
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().StringVar(&category, "category", filter.AllCategories, "Restrict the search to one category")
	return cmd
}
