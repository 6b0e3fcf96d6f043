package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"task-scheduler/internal/api"
	"task-scheduler/internal/errors"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	app *App
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{app: app}
}

// Command builds the cobra command for complete
func (c *CompleteCommand) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed. Completed tasks are no longer recommended.
Completing a task twice leaves it unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.app.config.Application.Timeout)
			defer cancel()
			return c.Execute(ctx, args)
		},
	}
}

// Execute runs the complete command
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "complete", "usage: tt complete <id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.app.errorHandler.Handle("complete task",
			errors.NewInvalidInputError("id", args[0], "must be a task number"))
	}

	task, err := c.app.api.CompleteTask(ctx, api.CompleteTaskRequest{TaskID: id})
	if err != nil {
		return c.app.errorHandler.Handle("complete task", err)
	}
	return c.app.printer.Task("Completed", task)
}
