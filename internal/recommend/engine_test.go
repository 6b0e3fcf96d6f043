package recommend

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-scheduler/internal/domain"
)

var (
	today = civil.Date{Year: 2025, Month: time.March, Day: 14}
	base  = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
)

func task(id int64, title string, priority domain.Priority, dueOffset *int) domain.Task {
	t := domain.Task{
		ID:        id,
		Title:     title,
		Priority:  priority,
		Status:    domain.StatusPending,
		CreatedAt: base.Add(time.Duration(id) * time.Minute),
	}
	if dueOffset != nil {
		d := today.AddDays(*dueOffset)
		t.DueDate = &d
	}
	return t
}

func completed(t domain.Task, at time.Time) domain.Task {
	t.Status = domain.StatusCompleted
	t.CompletedAt = &at
	return t
}

func in(days int) *int {
	return &days
}

func titles(ranked []Ranked) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Task.Title
	}
	return out
}

func TestRank_Examples(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []domain.Task
		expected []string
	}{
		{
			name: "overdue tasks come first, most overdue first",
			tasks: []domain.Task{
				task(1, "A", domain.PriorityHigh, in(5)),
				task(2, "B", domain.PriorityHigh, in(-1)),
				task(3, "C", domain.PriorityLow, in(-10)),
			},
			expected: []string{"C", "B", "A"},
		},
		{
			name: "undated trails dated within a tier",
			tasks: []domain.Task{
				task(1, "D", domain.PriorityMedium, nil),
				task(2, "E", domain.PriorityMedium, in(1)),
			},
			expected: []string{"E", "D"},
		},
		{
			name: "priority beats due date when nothing is overdue",
			tasks: []domain.Task{
				task(1, "low-today", domain.PriorityLow, in(0)),
				task(2, "high-later", domain.PriorityHigh, in(30)),
				task(3, "medium-undated", domain.PriorityMedium, nil),
			},
			expected: []string{"high-later", "medium-undated", "low-today"},
		},
		{
			name: "overdue low priority beats undated high priority",
			tasks: []domain.Task{
				task(1, "high-undated", domain.PriorityHigh, nil),
				task(2, "low-late", domain.PriorityLow, in(-1)),
			},
			expected: []string{"low-late", "high-undated"},
		},
		{
			name: "equal keys fall back to creation order",
			tasks: []domain.Task{
				task(3, "third", domain.PriorityMedium, in(2)),
				task(1, "first", domain.PriorityMedium, in(2)),
				task(2, "second", domain.PriorityMedium, in(2)),
			},
			expected: []string{"first", "second", "third"},
		},
		{
			name: "equally overdue prefers higher priority",
			tasks: []domain.Task{
				task(1, "low", domain.PriorityLow, in(-2)),
				task(2, "high", domain.PriorityHigh, in(-2)),
			},
			expected: []string{"high", "low"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, titles(Rank(tt.tasks, today)))
		})
	}
}

func TestRank_ExcludesCompleted(t *testing.T) {
	done := completed(task(1, "done", domain.PriorityHigh, in(-5)), base)
	tasks := []domain.Task{done, task(2, "open", domain.PriorityLow, nil)}

	assert.Equal(t, []string{"open"}, titles(Rank(tasks, today)))
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank(nil, today)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)

	onlyDone := []domain.Task{completed(task(1, "done", domain.PriorityHigh, nil), base)}
	ranked = Rank(onlyDone, today)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	tasks := []domain.Task{
		task(1, "A", domain.PriorityLow, nil),
		task(2, "B", domain.PriorityHigh, in(-3)),
		task(3, "C", domain.PriorityMedium, in(1)),
	}
	snapshot := make([]domain.Task, len(tasks))
	copy(snapshot, tasks)

	Rank(tasks, today)

	assert.Equal(t, snapshot, tasks)
}

func TestRank_Deterministic(t *testing.T) {
	tasks := []domain.Task{
		task(4, "A", domain.PriorityMedium, in(2)),
		task(2, "B", domain.PriorityMedium, in(2)),
		task(3, "C", domain.PriorityHigh, nil),
		task(1, "D", domain.PriorityLow, in(-4)),
		task(5, "E", domain.PriorityLow, in(-4)),
	}
	reversed := make([]domain.Task, len(tasks))
	for i, tk := range tasks {
		reversed[len(tasks)-1-i] = tk
	}

	first := titles(Rank(tasks, today))
	assert.Equal(t, first, titles(Rank(tasks, today)))
	assert.Equal(t, first, titles(Rank(reversed, today)))
	assert.Equal(t, []string{"D", "E", "C", "B", "A"}, first)
}

func TestRank_SameCreationTimeUsesID(t *testing.T) {
	a := task(2, "A", domain.PriorityMedium, nil)
	b := task(1, "B", domain.PriorityMedium, nil)
	a.CreatedAt = base
	b.CreatedAt = base

	assert.Equal(t, []string{"B", "A"}, titles(Rank([]domain.Task{a, b}, today)))
}

func TestRank_Annotations(t *testing.T) {
	ranked := Rank([]domain.Task{
		task(1, "late", domain.PriorityLow, in(-2)),
		task(2, "soon", domain.PriorityHigh, in(3)),
		task(3, "later", domain.PriorityHigh, in(4)),
		task(4, "undated", domain.PriorityHigh, nil),
	}, today)

	require.Len(t, ranked, 4)

	assert.Equal(t, domain.UrgencyOverdue, ranked[0].Urgency)
	assert.Equal(t, -2, *ranked[0].DaysUntilDue)

	assert.Equal(t, domain.UrgencyDueSoon, ranked[1].Urgency)
	assert.Equal(t, 3, *ranked[1].DaysUntilDue)

	assert.Equal(t, domain.UrgencyNormal, ranked[2].Urgency)
	assert.Equal(t, domain.UrgencyNormal, ranked[3].Urgency)
	assert.Nil(t, ranked[3].DaysUntilDue)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		due      *int
		window   int
		expected domain.UrgencyClass
	}{
		{"yesterday", in(-1), 3, domain.UrgencyOverdue},
		{"today", in(0), 3, domain.UrgencyDueSoon},
		{"edge of window", in(3), 3, domain.UrgencyDueSoon},
		{"past window", in(4), 3, domain.UrgencyNormal},
		{"no due date", nil, 3, domain.UrgencyNormal},
		{"zero window keeps today due-soon", in(0), 0, domain.UrgencyDueSoon},
		{"zero window", in(1), 0, domain.UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(task(1, "x", domain.PriorityLow, tt.due), today, tt.window))
		})
	}
}

func TestNewEngine_Window(t *testing.T) {
	wide := NewEngine(7)
	assert.Equal(t, domain.UrgencyDueSoon, wide.Classify(task(1, "x", domain.PriorityLow, in(6)), today))

	fallback := NewEngine(-1)
	assert.Equal(t, domain.UrgencyNormal, fallback.Classify(task(1, "x", domain.PriorityLow, in(6)), today))
}
