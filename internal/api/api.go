package api

import (
	"context"

	"task-scheduler/internal/config"
	"task-scheduler/internal/domain"
	"task-scheduler/internal/services"
	"task-scheduler/internal/validation"
)

// API is the typed boundary shared by the CLI and the HTTP transport.
// Every request is validated before it reaches a service.
type API interface {
	AddTask(ctx context.Context, req AddTaskRequest) (*TaskResponse, error)
	ListTasks(ctx context.Context, req ListTasksRequest) ([]TaskResponse, error)
	CompleteTask(ctx context.Context, req CompleteTaskRequest) (*TaskResponse, error)
	Recommend(ctx context.Context, req RecommendRequest) (*RecommendationsResponse, error)
}

type apiImpl struct {
	services     *services.ServiceContainer
	validator    *validation.Validator
	defaultLimit int
}

// New creates a new API instance over the given services
func New(container *services.ServiceContainer, cfg *config.Config) API {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &apiImpl{
		services:     container,
		validator:    validation.NewValidatorWithConfig(cfg),
		defaultLimit: cfg.Recommend.Limit,
	}
}

func (a *apiImpl) AddTask(ctx context.Context, req AddTaskRequest) (*TaskResponse, error) {
	if err := a.validator.Struct(req); err != nil {
		return nil, validation.AsAppError(err)
	}

	dueDate, err := validation.ParseOptionalDate("due_date", req.DueDate)
	if err != nil {
		return nil, err
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		// Already checked by the priority tag.
		priority, _ = domain.ParsePriority(req.Priority)
	}

	task, err := a.services.TaskService.AddTask(ctx, services.NewTask{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    priority,
	})
	if err != nil {
		return nil, err
	}
	return NewTaskResponse(task), nil
}

func (a *apiImpl) ListTasks(ctx context.Context, req ListTasksRequest) ([]TaskResponse, error) {
	if err := a.validator.Struct(req); err != nil {
		return nil, validation.AsAppError(err)
	}
	filter, _ := domain.ParseStatusFilter(req.Status)

	tasks, err := a.services.TaskService.ListTasks(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		out[i] = *NewTaskResponse(task)
	}
	return out, nil
}

func (a *apiImpl) CompleteTask(ctx context.Context, req CompleteTaskRequest) (*TaskResponse, error) {
	if err := a.validator.Struct(req); err != nil {
		return nil, validation.AsAppError(err)
	}

	task, err := a.services.TaskService.CompleteTask(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}
	return NewTaskResponse(task), nil
}

func (a *apiImpl) Recommend(ctx context.Context, req RecommendRequest) (*RecommendationsResponse, error) {
	if err := a.validator.Struct(req); err != nil {
		return nil, validation.AsAppError(err)
	}

	recs := a.services.RecommendationService
	date, err := validation.ResolveReferenceDate("date", req.Date, recs.Today())
	if err != nil {
		return nil, err
	}

	limit := a.defaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	result, err := recs.Recommend(ctx, date, limit)
	if err != nil {
		return nil, err
	}
	return NewRecommendationsResponse(result), nil
}
