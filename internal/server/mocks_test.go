package server

import (
	"context"

	"github.com/stretchr/testify/mock"

	"task-scheduler/internal/api"
)

// MockAPI mocks the api.API interface
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) AddTask(ctx context.Context, req api.AddTaskRequest) (*api.TaskResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TaskResponse), args.Error(1)
}

func (m *MockAPI) ListTasks(ctx context.Context, req api.ListTasksRequest) ([]api.TaskResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.TaskResponse), args.Error(1)
}

func (m *MockAPI) CompleteTask(ctx context.Context, req api.CompleteTaskRequest) (*api.TaskResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TaskResponse), args.Error(1)
}

func (m *MockAPI) Recommend(ctx context.Context, req api.RecommendRequest) (*api.RecommendationsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.RecommendationsResponse), args.Error(1)
}
