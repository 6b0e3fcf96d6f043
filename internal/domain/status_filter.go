package domain

import (
	"fmt"
	"strings"
)

// StatusFilter selects tasks by status when listing.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = "pending"
	FilterCompleted StatusFilter = "completed"
)

// ParseStatusFilter parses a filter name; the empty string means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending:
		return FilterPending, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("unknown status filter %q", s)
	}
}

// Status returns the single status selected by the filter, or nil for all.
func (f StatusFilter) Status() *Status {
	var s Status
	switch f {
	case FilterPending:
		s = StatusPending
	case FilterCompleted:
		s = StatusCompleted
	default:
		return nil
	}
	return &s
}
