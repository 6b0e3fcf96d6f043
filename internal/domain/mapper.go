package domain

import (
	"fmt"

	"task-scheduler/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		Title:       domainTask.Title,
		Description: domainTask.Description,
		DueDate:     domainTask.DueDate,
		Priority:    domainTask.Priority.String(),
		Status:      string(domainTask.Status),
		CreatedAt:   domainTask.CreatedAt,
		CompletedAt: domainTask.CompletedAt,
	}
}

// FromDatabase converts a database Task to a domain Task. Stored enum values
// that the domain does not know are reported as errors.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) (Task, error) {
	priority, err := ParsePriority(dbTask.Priority)
	if err != nil {
		return Task{}, fmt.Errorf("task %d: %w", dbTask.ID, err)
	}
	status, err := ParseStatus(dbTask.Status)
	if err != nil {
		return Task{}, fmt.Errorf("task %d: %w", dbTask.ID, err)
	}

	return Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		DueDate:     dbTask.DueDate,
		Priority:    priority,
		Status:      status,
		CreatedAt:   dbTask.CreatedAt,
		CompletedAt: dbTask.CompletedAt,
	}, nil
}

// FromDatabaseSlice converts database Tasks to domain Tasks, stopping at the first bad row.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) ([]Task, error) {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		converted, err := m.FromDatabase(*task)
		if err != nil {
			return nil, err
		}
		domainTasks[i] = converted
	}
	return domainTasks, nil
}

// ListOptionsMapper converts a StatusFilter into store list options.
type ListOptionsMapper struct{}

// NewListOptionsMapper creates a new ListOptionsMapper instance.
func NewListOptionsMapper() *ListOptionsMapper {
	return &ListOptionsMapper{}
}

// ToDatabase converts a domain StatusFilter to database ListOptions.
func (m *ListOptionsMapper) ToDatabase(filter StatusFilter) sqlite.ListOptions {
	status := filter.Status()
	if status == nil {
		return sqlite.ListOptions{}
	}
	s := string(*status)
	return sqlite.ListOptions{Status: &s}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task        *TaskMapper
	ListOptions *ListOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:        NewTaskMapper(),
		ListOptions: NewListOptionsMapper(),
	}
}
