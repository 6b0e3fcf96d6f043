package cli

import (
	stderrors "errors"
	"fmt"

	"task-scheduler/internal/errors"
	"task-scheduler/internal/validation"
)

// ErrorHandler turns command errors into messages fit for a terminal
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle prefixes the user-facing message of err with the failed operation.
// Errors without a structured type keep their chain.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if message, ok := eh.userMessage(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, message)
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func (eh *ErrorHandler) userMessage(err error) (string, bool) {
	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err), true
	}
	var ve *validation.ValidationError
	if stderrors.As(err, &ve) {
		return ve.GetUserFriendlyMessage(), true
	}
	return "", false
}
