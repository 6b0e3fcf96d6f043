package sqlite

import (
	"time"

	"cloud.google.com/go/civil"
)

// Task is a row of the tasks table.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     *civil.Date // NULL when the task has no due date
	Priority    string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time // NULL while pending
}

// Stored status values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// ListOptions filters ListTasks. A nil Status lists every task.
type ListOptions struct {
	Status *string
}
