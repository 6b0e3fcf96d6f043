package services

import (
	"context"
	"strings"

	"task-scheduler/internal/config"
	"task-scheduler/internal/domain"
	"task-scheduler/internal/errors"
	"task-scheduler/internal/repository/sqlite"
	"task-scheduler/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	clock         Clock
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, cfg *config.Config, clock Clock) TaskService {
	if clock == nil {
		clock = SystemClock
	}
	return &taskServiceImpl{
		repo:          repo,
		clock:         clock,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// AddTask validates and stores a new pending task
func (t *taskServiceImpl) AddTask(ctx context.Context, input NewTask) (*domain.Task, error) {
	priority := input.Priority
	if priority == 0 {
		priority = domain.PriorityMedium
	}

	task := domain.NewTask(
		strings.TrimSpace(input.Title),
		strings.TrimSpace(input.Description),
		input.DueDate,
		priority,
		t.clock.Now(),
	)
	if err := t.taskValidator.ValidateNewTask(task); err != nil {
		return nil, validation.AsAppError(err)
	}

	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	return t.fromDatabase(&dbTask)
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, validation.AsAppError(err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	return t.fromDatabase(dbTask)
}

// ListTasks returns tasks matching the filter in creation order
func (t *taskServiceImpl) ListTasks(ctx context.Context, filter domain.StatusFilter) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx, t.mapper.ListOptions.ToDatabase(filter))
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		task, err := t.fromDatabase(dbTask)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// CompleteTask marks a task completed, stamping the completion time once
func (t *taskServiceImpl) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, validation.AsAppError(err)
	}

	dbTask, err := t.repo.CompleteTask(ctx, id, t.clock.Now())
	if err != nil {
		return nil, err
	}

	return t.fromDatabase(dbTask)
}

func (t *taskServiceImpl) fromDatabase(dbTask *sqlite.Task) (*domain.Task, error) {
	task, err := t.mapper.Task.FromDatabase(*dbTask)
	if err != nil {
		return nil, errors.NewDatabaseError("decode task", err)
	}
	return &task, nil
}
