package validation

import (
	"task-scheduler/internal/config"
	"task-scheduler/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator using default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a task title for creation
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed,
			tv.validator.getTitleMinLength(), tv.validator.getTitleMaxLength())
	}
	if !tv.validator.HasNoControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError("title", trimmed)
	}

	return validationError.ErrOrNil()
}

// ValidateDescription validates an optional task description
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidDescriptionLength(description) {
		validationError.AddInvalidLengthError("description", description, 0, tv.validator.getDescriptionMaxLength())
	}

	return validationError.ErrOrNil()
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateNewTask validates a task that is about to be stored
func (tv *TaskValidator) ValidateNewTask(task domain.Task) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateTitle(task.Title))
	validationError.Merge(tv.ValidateDescription(task.Description))

	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", task.Priority, "must be one of low, medium, high")
	}
	if task.DueDate != nil && !task.DueDate.IsValid() {
		validationError.AddInvalidFormatError("due_date", task.DueDate.String(), "YYYY-MM-DD")
	}
	if !task.IsPending() {
		validationError.AddInvalidValueError("status", task.Status, "new tasks must be pending")
	}

	return validationError.ErrOrNil()
}
