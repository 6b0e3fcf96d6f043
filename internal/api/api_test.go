package api

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-scheduler/internal/config"
	"task-scheduler/internal/errors"
	"task-scheduler/internal/repository/sqlite"
	"task-scheduler/internal/services"
)

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func setupTestAPI(t *testing.T, cfg *config.Config) API {
	t.Helper()
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return New(services.NewServiceContainer(repo, cfg, services.FixedClock(now)), cfg)
}

func intPtr(n int) *int {
	return &n
}

func TestAddTask(t *testing.T) {
	tests := []struct {
		name           string
		req            AddTaskRequest
		check          func(t *testing.T, resp *TaskResponse)
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name: "should create task with every field",
			req:  AddTaskRequest{Title: "Write report", Description: "Q1", DueDate: "2025-03-20", Priority: "high"},
			check: func(t *testing.T, resp *TaskResponse) {
				assert.Equal(t, "high", resp.Priority)
				require.NotNil(t, resp.DueDate)
				assert.Equal(t, "2025-03-20", resp.DueDate.String())
				assert.Equal(t, "pending", resp.Status)
			},
		},
		{
			name: "should default priority and leave due date empty",
			req:  AddTaskRequest{Title: "Someday"},
			check: func(t *testing.T, resp *TaskResponse) {
				assert.Equal(t, "medium", resp.Priority)
				assert.Nil(t, resp.DueDate)
			},
		},
		{
			name: "should reject missing title",
			req:  AddTaskRequest{},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Equal(t, "title is required", errors.GetUserMessage(err))
			},
		},
		{
			name: "should reject unknown priority",
			req:  AddTaskRequest{Title: "x", Priority: "urgent"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, errors.GetUserMessage(err), "priority")
			},
		},
		{
			name: "should reject malformed due date as invalid date",
			req:  AddTaskRequest{Title: "x", DueDate: "next friday"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsInvalidDate(err))
				assert.Equal(t, "INVALID_DATE", errors.GetErrorCode(err))
			},
		},
		{
			name: "should accept a due date in the past",
			req:  AddTaskRequest{Title: "late", DueDate: "2020-01-01"},
			check: func(t *testing.T, resp *TaskResponse) {
				assert.Equal(t, "2020-01-01", resp.DueDate.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupTestAPI(t, nil)

			resp, err := api.AddTask(context.Background(), tt.req)

			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Greater(t, resp.ID, int64(0))
			tt.check(t, resp)
		})
	}
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	api := setupTestAPI(t, nil)

	first, err := api.AddTask(ctx, AddTaskRequest{Title: "first"})
	require.NoError(t, err)
	_, err = api.AddTask(ctx, AddTaskRequest{Title: "second"})
	require.NoError(t, err)
	_, err = api.CompleteTask(ctx, CompleteTaskRequest{TaskID: first.ID})
	require.NoError(t, err)

	all, err := api.ListTasks(ctx, ListTasksRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := api.ListTasks(ctx, ListTasksRequest{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "second", pending[0].Title)

	completed, err := api.ListTasks(ctx, ListTasksRequest{Status: "completed"})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.NotNil(t, completed[0].CompletedAt)

	_, err = api.ListTasks(ctx, ListTasksRequest{Status: "archived"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestCompleteTask(t *testing.T) {
	ctx := context.Background()
	api := setupTestAPI(t, nil)

	task, err := api.AddTask(ctx, AddTaskRequest{Title: "finish"})
	require.NoError(t, err)

	done, err := api.CompleteTask(ctx, CompleteTaskRequest{TaskID: task.ID})
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)

	_, err = api.CompleteTask(ctx, CompleteTaskRequest{TaskID: 999})
	assert.True(t, errors.IsNotFound(err))

	_, err = api.CompleteTask(ctx, CompleteTaskRequest{})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()
	api := setupTestAPI(t, nil)

	for _, req := range []AddTaskRequest{
		{Title: "A", Priority: "high", DueDate: "2025-03-19"},
		{Title: "B", Priority: "high", DueDate: "2025-03-13"},
		{Title: "C", Priority: "low", DueDate: "2025-03-04"},
		{Title: "D", Priority: "medium"},
		{Title: "E", Priority: "medium", DueDate: "2025-03-15"},
		{Title: "F", Priority: "low"},
	} {
		_, err := api.AddTask(ctx, req)
		require.NoError(t, err)
	}

	titles := func(resp *RecommendationsResponse) []string {
		var out []string
		for _, rec := range resp.Recommendations {
			out = append(out, rec.Title)
		}
		return out
	}

	t.Run("today with configured default limit", func(t *testing.T) {
		resp, err := api.Recommend(ctx, RecommendRequest{Date: "today"})
		require.NoError(t, err)
		assert.Equal(t, civil.Date{Year: 2025, Month: time.March, Day: 14}, resp.Date)
		assert.Equal(t, []string{"C", "B", "A", "E", "D"}, titles(resp))
		assert.Equal(t, 6, resp.PendingCount)
	})

	t.Run("empty date means today", func(t *testing.T) {
		resp, err := api.Recommend(ctx, RecommendRequest{})
		require.NoError(t, err)
		assert.Equal(t, "2025-03-14", resp.Date.String())
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		resp, err := api.Recommend(ctx, RecommendRequest{Limit: intPtr(0)})
		require.NoError(t, err)
		assert.Len(t, resp.Recommendations, 6)
	})

	t.Run("explicit date shifts overdue status", func(t *testing.T) {
		resp, err := api.Recommend(ctx, RecommendRequest{Date: "2025-03-01", Limit: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A"}, titles(resp))
		assert.Equal(t, "normal", resp.Recommendations[0].Urgency)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := api.Recommend(ctx, RecommendRequest{Date: "14/03/2025"})
		assert.True(t, errors.IsInvalidDate(err))
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := api.Recommend(ctx, RecommendRequest{Limit: intPtr(-1)})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})
}

func TestRecommend_ConfiguredLimit(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewConfig()
	cfg.Recommend.Limit = 1
	api := setupTestAPI(t, cfg)

	for _, title := range []string{"one", "two"} {
		_, err := api.AddTask(ctx, AddTaskRequest{Title: title})
		require.NoError(t, err)
	}

	resp, err := api.Recommend(ctx, RecommendRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Recommendations, 1)
}

func TestResponses_JSON(t *testing.T) {
	ctx := context.Background()
	api := setupTestAPI(t, nil)

	task, err := api.AddTask(ctx, AddTaskRequest{Title: "json", DueDate: "2025-03-16", Priority: "low"})
	require.NoError(t, err)

	raw, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"title": "json",
		"description": "",
		"due_date": "2025-03-16",
		"priority": "low",
		"status": "pending",
		"created_at": "2025-03-14T09:30:00Z"
	}`, string(raw))

	recs, err := api.Recommend(ctx, RecommendRequest{})
	require.NoError(t, err)
	raw, err = json.Marshal(recs)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"date": "2025-03-14",
		"pending_count": 1,
		"recommendations": [{
			"rank": 1,
			"task_id": 1,
			"title": "json",
			"description": "",
			"priority": "low",
			"due_date": "2025-03-16",
			"days_until_due": 2,
			"urgency": "due-soon",
			"reason": "Low priority task due in 2 days"
		}]
	}`, string(raw))
}
