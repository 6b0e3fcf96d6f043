package validation

import (
	"strings"

	"cloud.google.com/go/civil"

	"task-scheduler/internal/errors"
)

// Today is accepted wherever a reference date is expected.
const Today = "today"

// ParseDate parses a YYYY-MM-DD calendar date. Malformed or impossible
// dates are reported as InvalidDate errors naming field.
func ParseDate(field, value string) (civil.Date, error) {
	trimmed := strings.TrimSpace(value)
	d, err := civil.ParseDate(trimmed)
	if err != nil {
		return civil.Date{}, errors.NewInvalidDateError(field, value, err)
	}
	if !d.IsValid() {
		return civil.Date{}, errors.NewInvalidDateError(field, value, nil)
	}
	return d, nil
}

// ParseOptionalDate is ParseDate for fields that may be left empty.
func ParseOptionalDate(field, value string) (*civil.Date, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ResolveReferenceDate returns today for an empty value or "today", and the
// parsed date otherwise.
func ResolveReferenceDate(field, value string, today civil.Date) (civil.Date, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, Today) {
		return today, nil
	}
	return ParseDate(field, trimmed)
}
