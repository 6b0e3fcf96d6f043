package sqlite

import (
	"database/sql"
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...any) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

const taskColumns = `id, title, description, due_date, priority, status, created_at, completed_at`

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var (
		dueDate     sql.NullString
		createdAt   string
		completedAt sql.NullString
	)

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&dueDate,
		&task.Priority,
		&task.Status,
		&createdAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if task.DueDate, err = ParseDateFromDB(dueDate); err != nil {
		return nil, fmt.Errorf("task %d: due_date: %w", task.ID, err)
	}
	if task.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, fmt.Errorf("task %d: created_at: %w", task.ID, err)
	}
	if completedAt.Valid {
		ts, err := ParseTimeFromDB(completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("task %d: completed_at: %w", task.ID, err)
		}
		task.CompletedAt = &ts
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := []*Task{}
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
