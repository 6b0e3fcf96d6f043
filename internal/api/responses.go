package api

import (
	"time"

	"cloud.google.com/go/civil"

	"task-scheduler/internal/domain"
)

// TaskResponse is the external view of a task
type TaskResponse struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DueDate     *civil.Date `json:"due_date"`
	Priority    string      `json:"priority"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// RecommendationResponse is one ranked task
type RecommendationResponse struct {
	Rank         int         `json:"rank"`
	TaskID       int64       `json:"task_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Priority     string      `json:"priority"`
	DueDate      *civil.Date `json:"due_date"`
	DaysUntilDue *int        `json:"days_until_due"`
	Urgency      string      `json:"urgency"`
	Reason       string      `json:"reason"`
}

// RecommendationsResponse is the ranked work order for Date
type RecommendationsResponse struct {
	Date            civil.Date               `json:"date"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	PendingCount    int                      `json:"pending_count"`
}

// NewTaskResponse converts a domain task
func NewTaskResponse(task *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority.String(),
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		CompletedAt: task.CompletedAt,
	}
}

// NewRecommendationsResponse converts a ranking result
func NewRecommendationsResponse(result *domain.RecommendationResult) *RecommendationsResponse {
	recs := make([]RecommendationResponse, len(result.Recommendations))
	for i, rec := range result.Recommendations {
		recs[i] = RecommendationResponse{
			Rank:         rec.Rank,
			TaskID:       rec.Task.ID,
			Title:        rec.Task.Title,
			Description:  rec.Task.Description,
			Priority:     rec.Task.Priority.String(),
			DueDate:      rec.Task.DueDate,
			DaysUntilDue: rec.DaysUntilDue,
			Urgency:      string(rec.Urgency),
			Reason:       rec.Reason,
		}
	}

	return &RecommendationsResponse{
		Date:            result.Date,
		Recommendations: recs,
		PendingCount:    result.PendingCount,
	}
}
