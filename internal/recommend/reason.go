package recommend

import (
	"fmt"
	"strings"
)

// Reason explains in one line why a task holds its place in the ranking.
func Reason(r Ranked) string {
	priority := r.Task.Priority.String()
	label := strings.ToUpper(priority[:1]) + priority[1:]

	switch {
	case r.DaysUntilDue == nil:
		return fmt.Sprintf("%s priority task with no due date", label)
	case *r.DaysUntilDue < 0:
		return fmt.Sprintf("Overdue by %s", pluralDays(-*r.DaysUntilDue))
	case *r.DaysUntilDue == 0:
		return fmt.Sprintf("%s priority task due today", label)
	default:
		return fmt.Sprintf("%s priority task due in %s", label, pluralDays(*r.DaysUntilDue))
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
