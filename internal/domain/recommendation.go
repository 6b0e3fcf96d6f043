package domain

import "cloud.google.com/go/civil"

// UrgencyClass is a display label derived from days-until-due. It is never stored.
type UrgencyClass string

const (
	UrgencyOverdue UrgencyClass = "overdue"
	UrgencyDueSoon UrgencyClass = "due-soon"
	UrgencyNormal  UrgencyClass = "normal"
)

// Recommendation is one entry of a ranked work order.
type Recommendation struct {
	Rank         int
	Task         Task
	DaysUntilDue *int
	Urgency      UrgencyClass
	Reason       string
}

// RecommendationResult is the ranked output for a reference date.
type RecommendationResult struct {
	Date            civil.Date
	Recommendations []Recommendation
	// PendingCount is the number of pending tasks considered before any limit was applied.
	PendingCount int
}
