package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"task-scheduler/internal/api"
	apperrors "task-scheduler/internal/errors"
)

// TaskHandler serves the task and recommendation endpoints.
type TaskHandler struct {
	api api.API
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(a api.API) *TaskHandler {
	return &TaskHandler{api: a}
}

// AddTask handles POST /api/tasks
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req api.AddTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, err)
		return
	}

	task, err := h.api.AddTask(r.Context(), req)
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", task.ID))
	RespondWithJSON(w, r, http.StatusCreated, task)
}

// ListTasks handles GET /api/tasks?status=
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.api.ListTasks(r.Context(), api.ListTasksRequest{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, tasks)
}

// CompleteTask handles POST /api/tasks/{id}/complete
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	task, err := h.api.CompleteTask(r.Context(), api.CompleteTaskRequest{TaskID: id})
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, task)
}

// Recommend handles GET /api/recommendations?date=&limit=
func (h *TaskHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	req := api.RecommendRequest{Date: r.URL.Query().Get("date")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			RespondWithError(w, r, apperrors.NewInvalidInputError("limit", raw, "must be an integer"))
			return
		}
		req.Limit = &limit
	}

	// Each request ranks its own snapshot so a completion is never hidden by
	// a read that started before it.
	resp, err := h.api.Recommend(r.Context(), req)
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, resp)
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewInvalidInputError(name, raw, "must be an integer")
	}
	return id, nil
}
