package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"task-scheduler/internal/config"
	"task-scheduler/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	validate *validator.Validate
	config   *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return NewValidatorWithConfig(nil)
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match what callers sent.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = validate.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePriority(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("status_filter", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseStatusFilter(fl.Field().String())
		return err == nil
	})

	return &Validator{
		validate: validate,
		config:   cfg,
	}
}

// Struct checks the validate tags of s and collects failures into a ValidationError.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	validationError := NewValidationError()
	for _, fe := range fieldErrs {
		addFieldError(validationError, fe)
	}
	return validationError
}

func addFieldError(ve *ValidationError, fe validator.FieldError) {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		ve.AddRequiredError(field)
	case "priority":
		ve.AddInvalidValueError(field, fe.Value(), "must be one of low, medium, high")
	case "status_filter":
		ve.AddInvalidValueError(field, fe.Value(), "must be one of all, pending, completed")
	case "gt", "gte":
		ve.AddInvalidValueError(field, fe.Value(), fmt.Sprintf("must be %s %s", comparison(fe.Tag()), fe.Param()))
	default:
		ve.AddError(field, ErrorTypeInvalidValue, fmt.Sprintf("%s failed %s check", field, fe.Tag()), fe.Value())
	}
}

func comparison(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed string has between min and max characters
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTitleLength checks if a title length is within configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	return v.IsValidStringLength(title, v.getTitleMinLength(), v.getTitleMaxLength())
}

// IsValidDescriptionLength checks a description against the configured maximum
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, 0, v.getDescriptionMaxLength())
}

// HasNoControlCharacters rejects newlines, tabs and other control characters
func (v *Validator) HasNoControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) getTitleMinLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMinLength
	}
	return 1
}

func (v *Validator) getTitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 255
}

func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 2000
}
