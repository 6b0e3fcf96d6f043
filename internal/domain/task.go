package domain

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Priority is the ordered importance of a task. Higher values are more important.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// ParsePriority parses "low", "medium" or "high" (case-insensitive).
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// IsValid reports whether p is one of the defined priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus parses a stored status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     *civil.Date
	Priority    Priority
	Status      Status
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewTask creates a pending task. The ID is assigned by the store.
func NewTask(title, description string, dueDate *civil.Date, priority Priority, createdAt time.Time) Task {
	return Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   createdAt,
	}
}

func (t Task) IsPending() bool {
	return t.Status == StatusPending
}

// DaysUntilDue returns the whole days from today until the due date.
// The second result is false when the task has no due date.
func (t Task) DaysUntilDue(today civil.Date) (int, bool) {
	if t.DueDate == nil {
		return 0, false
	}
	return t.DueDate.DaysSince(today), true
}
