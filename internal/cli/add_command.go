package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"task-scheduler/internal/api"
	"task-scheduler/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App

	description string
	due         string
	priority    string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Command builds the cobra command for add
func (c *AddCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a new pending task. Words after "add" form the title.

Examples:
  tt add "Write quarterly report" --due 2025-03-20 --priority high
  tt add Water the plants -p low`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.app.config.Application.Timeout)
			defer cancel()
			return c.Execute(ctx, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&c.description, "description", "d", "", "Task description")
	flags.StringVar(&c.due, "due", "", "Due date (YYYY-MM-DD)")
	flags.StringVarP(&c.priority, "priority", "p", "", "Priority: low, medium or high (default medium)")

	return cmd
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "add", "usage: tt add \"task title\"")
	}

	task, err := c.app.api.AddTask(ctx, api.AddTaskRequest{
		Title:       strings.Join(args, " "),
		Description: c.description,
		DueDate:     c.due,
		Priority:    c.priority,
	})
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	c.app.logger.Debug().Int64("task_id", task.ID).Msg("task added")
	return c.app.printer.Task("Added", task)
}
