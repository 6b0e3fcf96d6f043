package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"task-scheduler/internal/config"
	"task-scheduler/internal/server"
)

// ServeCommand runs the HTTP API
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Command builds the cobra command for serve
func (c *ServeCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task API over HTTP",
		Long: `Serve the task API as JSON over HTTP until interrupted.

Routes:
  POST /api/tasks                   Add a task
  GET  /api/tasks?status=           List tasks
  POST /api/tasks/{id}/complete     Complete a task
  GET  /api/recommendations?date=&limit=
  GET  /health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Execute(cmd.Context(), args)
		},
	}

	defaults := config.NewConfig()
	flags := cmd.Flags()
	flags.String(config.FlagName(config.KeyServerAddr), defaults.Server.Addr,
		"Listen address (TT_SERVER_ADDR)")
	flags.Duration(config.FlagName(config.KeyShutdownTimeout), defaults.Server.ShutdownTimeout,
		"Graceful shutdown timeout (TT_SERVER_SHUTDOWN_TIMEOUT)")

	return cmd
}

// Execute serves until ctx is canceled
func (c *ServeCommand) Execute(ctx context.Context, _ []string) error {
	cfg := c.app.config.Server
	srv := server.New(c.app.api, cfg.Addr, cfg.ShutdownTimeout, c.app.logger)

	start := time.Now()
	if err := srv.Run(ctx); err != nil {
		return err
	}
	c.app.logger.Info().Dur("uptime", time.Since(start)).Msg("server stopped")
	return nil
}
