package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-scheduler/internal/api"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App

	status string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Command builds the cobra command for list
func (c *ListCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in the order they were created.

Examples:
  tt list                    # List every task
  tt list --status pending   # Only open tasks
  tt list -s completed -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.app.config.Application.Timeout)
			defer cancel()
			return c.Execute(ctx, args)
		},
	}

	cmd.Flags().StringVarP(&c.status, "status", "s", "", "Filter by status: all, pending or completed")

	return cmd
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, _ []string) error {
	tasks, err := c.app.api.ListTasks(ctx, api.ListTasksRequest{Status: c.status})
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}
	return c.app.printer.Tasks(tasks)
}
