package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed *.sql
var migrationsFS embed.FS

// TableName records applied versions.
const TableName = "schema_migrations"

// goose keeps its settings in package globals.
var gooseMu sync.Mutex

// RunMigrations applies every pending migration embedded in this package.
// goose progress goes to logger at debug level.
func RunMigrations(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := configure(logger); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Version returns the most recently applied migration version.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := configure(zerolog.Nop()); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}

func configure(logger zerolog.Logger) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{logger.With().Str("component", "migrations").Logger()})
	goose.SetTableName(TableName)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return nil
}

// gooseLogger forwards goose output to a zerolog logger.
type gooseLogger struct {
	logger zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
