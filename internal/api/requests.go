package api

// AddTaskRequest creates a task. DueDate is YYYY-MM-DD and Priority one of
// low, medium or high; both are optional.
type AddTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,priority"`
}

// ListTasksRequest lists tasks, optionally filtered by status (all, pending, completed).
type ListTasksRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,status_filter"`
}

// CompleteTaskRequest marks one task completed.
type CompleteTaskRequest struct {
	TaskID int64 `json:"task_id" validate:"gt=0"`
}

// RecommendRequest asks for the ranked work order on Date, which may be
// YYYY-MM-DD, "today" or empty. A nil Limit uses the configured default and
// zero returns every pending task.
type RecommendRequest struct {
	Date  string `json:"date,omitempty"`
	Limit *int   `json:"limit,omitempty" validate:"omitempty,gte=0"`
}
