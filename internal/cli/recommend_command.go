package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-scheduler/internal/api"
)

// RecommendCommand handles the recommend command
type RecommendCommand struct {
	app *App

	date     string
	limit    int
	limitSet bool
}

// NewRecommendCommand creates a new recommend command handler
func NewRecommendCommand(app *App) *RecommendCommand {
	return &RecommendCommand{app: app}
}

// Command builds the cobra command for recommend
func (c *RecommendCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show what to work on next",
		Long: `Rank the pending tasks for a date. Overdue tasks come first, most overdue
first, followed by the rest by priority and then by due date.

Examples:
  tt recommend                     # Top tasks for today
  tt recommend --date 2025-03-20   # As they will stand on 20 March
  tt recommend --limit 0           # Every pending task`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.limitSet = cmd.Flags().Changed("limit")

			ctx, cancel := context.WithTimeout(cmd.Context(), c.app.config.Application.Timeout)
			defer cancel()
			return c.Execute(ctx, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&c.date, "date", "", "Reference date (YYYY-MM-DD or today)")
	flags.IntVarP(&c.limit, "limit", "n", 0, "Number of tasks to show, 0 for all (default from recommend.limit)")

	return cmd
}

// Execute runs the recommend command
func (c *RecommendCommand) Execute(ctx context.Context, _ []string) error {
	req := api.RecommendRequest{Date: c.date}
	if c.limitSet {
		limit := c.limit
		req.Limit = &limit
	}

	resp, err := c.app.api.Recommend(ctx, req)
	if err != nil {
		return c.app.errorHandler.Handle("recommend tasks", err)
	}
	return c.app.printer.Recommendations(resp)
}
