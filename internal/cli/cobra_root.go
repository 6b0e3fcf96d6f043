package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"task-scheduler/internal/config"
	"task-scheduler/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	backend Backend
}

// NewRootCommand creates the root cobra command with global flags.
// The backend is opened once configuration has been loaded from flags,
// environment and an optional config file.
func NewRootCommand(backend Backend) *RootCommand {
	root := &RootCommand{
		app:     &App{errorHandler: NewErrorHandler()},
		backend: backend,
	}

	root.cmd = &cobra.Command{
		Use:   "tt",
		Short: "A command-line task scheduler",
		Long: `Task scheduler (tt) keeps a list of tasks and recommends what to work on next.

FEATURES:
  • Add tasks with an optional due date and priority
  • List tasks, filtered by status
  • Rank pending tasks by urgency for any date
  • Serve the same operations as a JSON HTTP API

EXAMPLES:
  tt add "Write report" --due 2025-03-20 -p high   # Add a task
  tt list --status pending                         # Open tasks
  tt complete 3                                    # Mark task 3 done
  tt recommend                                     # What to do today
  tt recommend --date 2025-03-20 --limit 0         # Full ranking for a date
  tt serve --server-addr :8080                     # Run the HTTP API

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file (--config) > defaults

  Every setting can be given as a flag or as a TT_ environment variable:
    --db-dir                       TT_DB_DIR (default: ~/.tt)
    --db-filename                  TT_DB_FILENAME (default: tt.db)
    --db-query-timeout             TT_DB_QUERY_TIMEOUT (default: 10s)
    --db-write-timeout             TT_DB_WRITE_TIMEOUT (default: 5s)
    --validation-title-min-length  TT_VALIDATION_TITLE_MIN_LENGTH (default: 1)
    --validation-title-max-length  TT_VALIDATION_TITLE_MAX_LENGTH (default: 255)
    --recommend-limit              TT_RECOMMEND_LIMIT (default: 5)
    --recommend-due-soon-days      TT_RECOMMEND_DUE_SOON_DAYS (default: 3)
    --app-env                      TT_APP_ENV or TT_ENV (default: production)
    --log-level                    TT_LOG_LEVEL (default: info)
    --output-format, -o            TT_OUTPUT_FORMAT (default: text)

  Set TT_DEBUG=1 to force debug logging.

GETTING HELP:
  tt [command] --help                      # Get help for any specific command
  tt completion bash                       # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsBackend(cmd) {
				return nil
			}
			return root.setup(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// SetOutput redirects command output and logs, for tests and embedding
func (r *RootCommand) SetOutput(out, errOut io.Writer) {
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// SetArgs overrides the arguments, which default to os.Args[1:]
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command and releases the backend afterwards
func (r *RootCommand) Execute(ctx context.Context) error {
	defer func() {
		if err := r.app.Close(); err != nil {
			r.app.logger.Error().Err(err).Msg("failed to close task store")
		}
	}()
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds one persistent flag per setting key
func (r *RootCommand) addGlobalFlags() {
	d := config.NewConfig()
	flags := r.cmd.PersistentFlags()

	flags.String(config.ConfigFileFlag, "", "YAML configuration file")

	// Database configuration
	flags.String(config.FlagName(config.KeyDBDir), d.Database.Dir, "Database directory")
	flags.String(config.FlagName(config.KeyDBFilename), d.Database.Filename, "Database filename")
	flags.Duration(config.FlagName(config.KeyDBQueryTimeout), d.Database.QueryTimeout, "Database query timeout")
	flags.Duration(config.FlagName(config.KeyDBWriteTimeout), d.Database.WriteTimeout, "Database write timeout")

	// Validation configuration
	flags.Int(config.FlagName(config.KeyTitleMinLength), d.Validation.TitleMinLength, "Minimum title length")
	flags.Int(config.FlagName(config.KeyTitleMaxLength), d.Validation.TitleMaxLength, "Maximum title length")
	flags.Int(config.FlagName(config.KeyDescriptionMaxLength), d.Validation.DescriptionMaxLength, "Maximum description length")

	// Recommendation configuration
	flags.Int(config.FlagName(config.KeyRecommendLimit), d.Recommend.Limit, "Default number of recommendations, 0 for all")
	flags.Int(config.FlagName(config.KeyDueSoonDays), d.Recommend.DueSoonDays, "Days ahead that count as due soon")

	// Application configuration
	flags.Duration(config.FlagName(config.KeyAppTimeout), d.Application.Timeout, "Timeout for a single command")
	flags.String(config.FlagName(config.KeyAppEnv), string(d.Application.Environment), "Environment: development, testing or production")
	flags.String(config.FlagName(config.KeyLogLevel), d.Log.Level, "Log level: trace, debug, info, warn or error")
	flags.StringP(config.FlagName(config.KeyOutputFormat), "o", d.Output.Format, "Output format: text or json")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		NewAddCommand(r.app).Command(),
		NewListCommand(r.app).Command(),
		NewCompleteCommand(r.app).Command(),
		NewRecommendCommand(r.app).Command(),
		NewServeCommand(r.app).Command(),
	)
}

// setup loads configuration for cmd and opens the backend
func (r *RootCommand) setup(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The server logs JSON lines, interactive commands stay readable.
	console := cmd.Name() != "serve"
	logger, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr(), console)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a, closer, err := r.backend(cfg, logger)
	if err != nil {
		return err
	}

	r.app.api = a
	r.app.config = cfg
	r.app.logger = logger
	r.app.printer = NewPrinter(cmd.OutOrStdout(), cfg.Output.Format)
	r.app.closer = closer
	return nil
}

// needsBackend reports whether cmd talks to the task store. Help and shell
// completion do not.
func needsBackend(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
