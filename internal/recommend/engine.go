// Package recommend orders open tasks by urgency for a reference date.
//
// The ranking is a pure function of its input: it performs no I/O, holds no
// state and never modifies the slice it is given.
package recommend

import (
	"cmp"
	"slices"

	"cloud.google.com/go/civil"

	"task-scheduler/internal/domain"
)

// DefaultDueSoonDays is the widest days-until-due still classed as due-soon.
const DefaultDueSoonDays = 3

// Ranked is a pending task with the values the ranking was computed from.
type Ranked struct {
	Task         domain.Task
	DaysUntilDue *int // nil when the task has no due date
	Urgency      domain.UrgencyClass
}

// IsOverdue reports whether the task was due before the reference date.
func (r Ranked) IsOverdue() bool {
	return r.DaysUntilDue != nil && *r.DaysUntilDue < 0
}

// Engine ranks tasks using a configurable due-soon window.
type Engine struct {
	dueSoonDays int
}

// NewEngine returns an engine. A negative window falls back to DefaultDueSoonDays.
func NewEngine(dueSoonDays int) Engine {
	if dueSoonDays < 0 {
		dueSoonDays = DefaultDueSoonDays
	}
	return Engine{dueSoonDays: dueSoonDays}
}

// Rank orders tasks with the default due-soon window.
func Rank(tasks []domain.Task, today civil.Date) []Ranked {
	return NewEngine(DefaultDueSoonDays).Rank(tasks, today)
}

// Rank returns the pending tasks in recommended working order:
//
//  1. overdue tasks, most overdue first
//  2. everything else by priority, high first
//  3. within a priority, soonest due first, undated last
//  4. remaining ties by creation time, then id
//
// Completed tasks are dropped. The result is never nil.
func (e Engine) Rank(tasks []domain.Task, today civil.Date) []Ranked {
	ranked := make([]Ranked, 0, len(tasks))
	for _, task := range tasks {
		if !task.IsPending() {
			continue
		}
		entry := Ranked{Task: task, Urgency: e.Classify(task, today)}
		if days, ok := task.DaysUntilDue(today); ok {
			entry.DaysUntilDue = &days
		}
		ranked = append(ranked, entry)
	}

	slices.SortStableFunc(ranked, Compare)
	return ranked
}

// Classify derives the urgency label of a task for the given day.
func (e Engine) Classify(task domain.Task, today civil.Date) domain.UrgencyClass {
	return Classify(task, today, e.dueSoonDays)
}

// Classify derives the urgency label of a task: overdue when the due date has
// passed, due-soon when it falls within dueSoonDays, normal otherwise.
func Classify(task domain.Task, today civil.Date, dueSoonDays int) domain.UrgencyClass {
	days, ok := task.DaysUntilDue(today)
	switch {
	case !ok:
		return domain.UrgencyNormal
	case days < 0:
		return domain.UrgencyOverdue
	case days <= dueSoonDays:
		return domain.UrgencyDueSoon
	default:
		return domain.UrgencyNormal
	}
}

// Compare orders two ranked entries; it returns a negative number when a
// should be worked on before b.
func Compare(a, b Ranked) int {
	aOverdue, bOverdue := a.IsOverdue(), b.IsOverdue()
	if aOverdue != bOverdue {
		if aOverdue {
			return -1
		}
		return 1
	}

	if aOverdue {
		// Both overdue: the more negative days-until-due goes first.
		if c := cmp.Compare(*a.DaysUntilDue, *b.DaysUntilDue); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Task.Priority, a.Task.Priority); c != 0 {
			return c
		}
		return compareCreation(a.Task, b.Task)
	}

	if c := cmp.Compare(b.Task.Priority, a.Task.Priority); c != 0 {
		return c
	}
	if c := compareDue(a.DaysUntilDue, b.DaysUntilDue); c != 0 {
		return c
	}
	return compareCreation(a.Task, b.Task)
}

// compareDue sorts dated before undated, then by days ascending.
func compareDue(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

func compareCreation(a, b domain.Task) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
