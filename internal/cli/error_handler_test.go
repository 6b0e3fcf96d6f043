package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "task-scheduler/internal/errors"
	"task-scheduler/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	titleRequired := validation.NewValidationError()
	titleRequired.AddRequiredError("title")

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
		keepsWrap bool
	}{
		{
			name:      "unknown task",
			operation: "complete task",
			err:       apperrors.NewNotFoundError("task", "42"),
			expected:  "failed to complete task: task not found: 42",
		},
		{
			name:      "malformed reference date",
			operation: "recommend tasks",
			err:       apperrors.NewInvalidDateError("date", "next week", nil),
			expected:  `failed to recommend tasks: invalid date for date: "next week" (expected YYYY-MM-DD)`,
		},
		{
			name:      "store failure hides driver text",
			operation: "list tasks",
			err:       apperrors.NewDatabaseError("list tasks", errors.New("database is locked")),
			expected:  "failed to list tasks: A database error occurred. Please try again.",
		},
		{
			name:      "field errors behind a wrap",
			operation: "add task",
			err:       fmt.Errorf("add: %w", titleRequired),
			expected:  "failed to add task: " + titleRequired.GetUserFriendlyMessage(),
		},
		{
			name:      "plain error keeps its chain",
			operation: "open store",
			err:       fmt.Errorf("open: %w", errors.New("permission denied")),
			expected:  "failed to open store: open: permission denied",
			keepsWrap: true,
		},
	}

	eh := NewErrorHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eh.Handle(tt.operation, tt.err)

			assert.EqualError(t, got, tt.expected)
			assert.Equal(t, tt.keepsWrap, errors.Is(got, tt.err))
		})
	}
}

func TestErrorHandler_HandleNil(t *testing.T) {
	assert.NoError(t, NewErrorHandler().Handle("list tasks", nil))
}
