package services

import (
	"context"

	"cloud.google.com/go/civil"

	"task-scheduler/internal/domain"
)

// NewTask carries the caller-supplied fields of a task to create
type NewTask struct {
	Title       string
	Description string
	DueDate     *civil.Date
	Priority    domain.Priority
}

// TaskService handles task lifecycle operations
type TaskService interface {
	AddTask(ctx context.Context, input NewTask) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context, filter domain.StatusFilter) ([]*domain.Task, error)
	// CompleteTask is idempotent: completing a completed task returns it unchanged.
	CompleteTask(ctx context.Context, id int64) (*domain.Task, error)
}

// RecommendationService ranks pending tasks for a reference date
type RecommendationService interface {
	// Recommend returns at most limit ranked tasks; limit <= 0 returns all of them.
	Recommend(ctx context.Context, today civil.Date, limit int) (*domain.RecommendationResult, error)
	// Today is the reference date used when the caller does not name one.
	Today() civil.Date
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService           TaskService
	RecommendationService RecommendationService
	Clock                 Clock
}
