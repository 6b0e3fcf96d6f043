package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"task-scheduler/internal/errors"
	"task-scheduler/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const busyTimeoutMillis = 5000

// Repository defines the task store operations used by the services
type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context, opts ListOptions) ([]*Task, error)
	CompleteTask(ctx context.Context, id int64, completedAt time.Time) (*Task, error)

	Close() error
}

// Options tunes the repository. Zero timeouts disable the per-call deadline.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration

	// Logger receives migration output. Nil discards it.
	Logger *zerolog.Logger
}

// DefaultOptions returns the timeouts used when no configuration is supplied.
func DefaultOptions() Options {
	return Options{
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance with default options
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions opens the database at dbPath, applies pending migrations and
// returns a ready repository. The caller owns it and must Close it.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// sqlite has a single writer, and every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := withTimeout(context.Background(), opts.WriteTimeout)
	defer cancel()

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	if err := migrations.RunMigrations(ctx, db, logger); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

func dsn(dbPath string) string {
	if dbPath == MemoryPath {
		return dbPath
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", dbPath, busyTimeoutMillis)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a task and assigns its ID. Status defaults to pending.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	if task.Status == "" {
		task.Status = StatusPending
	}

	query := `
	INSERT INTO tasks (title, description, due_date, priority, status, created_at, completed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Title,
		task.Description,
		FormatDateForDB(task.DueDate),
		task.Priority,
		task.Status,
		FormatTimeForDB(task.CreatedAt),
		FormatTimePtrForDB(task.CompletedAt),
	)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", strconv.FormatInt(id, 10), id)
}

// ListTasks retrieves tasks in creation order, optionally filtered by status
func (r *SQLiteRepository) ListTasks(ctx context.Context, opts ListOptions) ([]*Task, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks`
	var args []any
	if opts.Status != nil {
		query += ` WHERE status = ?`
		args = append(args, *opts.Status)
	}
	query += ` ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
}

// CompleteTask marks a pending task completed and returns the stored row.
// A task that is already completed is returned unchanged.
func (r *SQLiteRepository) CompleteTask(ctx context.Context, id int64, completedAt time.Time) (*Task, error) {
	writeCtx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	UPDATE tasks
	SET status = ?, completed_at = ?
	WHERE id = ? AND status = ?`

	if _, err := ExecuteRowsAffected(writeCtx, r.db, query,
		StatusCompleted, FormatTimeForDB(completedAt), id, StatusPending,
	); err != nil {
		return nil, err
	}

	// Zero rows affected means unknown or already completed; GetTask tells them apart.
	return r.GetTask(ctx, id)
}
