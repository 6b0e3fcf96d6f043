package sqlite

import (
	"database/sql"
	"time"

	"cloud.google.com/go/civil"
)

// FormatTimeForDB formats a time.Time value as an RFC3339 string with nanoseconds, in UTC
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatTimePtrForDB formats a *time.Time value, returning nil if the pointer is nil
func FormatTimePtrForDB(t *time.Time) any {
	if t == nil {
		return nil
	}
	return FormatTimeForDB(*t)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// FormatDateForDB formats a calendar date as YYYY-MM-DD, returning nil for a missing date
func FormatDateForDB(d *civil.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// ParseDateFromDB parses a nullable YYYY-MM-DD column
func ParseDateFromDB(s sql.NullString) (*civil.Date, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
