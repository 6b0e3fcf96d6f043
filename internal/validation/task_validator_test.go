package validation

import (
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-scheduler/internal/config"
	"task-scheduler/internal/domain"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantType ValidationErrorType
	}{
		{"valid", "Write report", ""},
		{"padded", "  Write report  ", ""},
		{"unicode", "Préparer le rapport", ""},
		{"empty", "", ErrorTypeRequired},
		{"whitespace only", "   ", ErrorTypeRequired},
		{"too long", strings.Repeat("a", 256), ErrorTypeInvalidLength},
		{"embedded newline", "Write\nreport", ErrorTypeInvalidCharacter},
	}

	tv := NewTaskValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tv.ValidateTitle(tt.title)
			if tt.wantType == "" {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Errors)
			assert.Equal(t, "title", ve.Errors[0].Field)
			assert.Equal(t, tt.wantType, ve.Errors[0].Type)
		})
	}
}

func TestTaskValidator_ValidateDescription(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.DescriptionMaxLength = 10
	tv := NewTaskValidatorWithConfig(cfg)

	assert.NoError(t, tv.ValidateDescription(""))
	assert.NoError(t, tv.ValidateDescription("short"))
	assert.Error(t, tv.ValidateDescription("far too long for this"))
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateTaskID(1))
	assert.Error(t, tv.ValidateTaskID(0))
	assert.Error(t, tv.ValidateTaskID(-5))
}

func TestTaskValidator_ValidateNewTask(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	due := civil.Date{Year: 2025, Month: time.March, Day: 20}
	tv := NewTaskValidator()

	valid := domain.NewTask("Write report", "", &due, domain.PriorityHigh, created)
	assert.NoError(t, tv.ValidateNewTask(valid))

	bad := domain.NewTask("", strings.Repeat("d", 2001), nil, domain.Priority(0), created)
	bad.Status = domain.StatusCompleted
	err := tv.ValidateNewTask(bad)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.GetFieldErrors("title"), 1)
	assert.Len(t, ve.GetFieldErrors("description"), 1)
	assert.Len(t, ve.GetFieldErrors("priority"), 1)
	assert.Len(t, ve.GetFieldErrors("status"), 1)
}
