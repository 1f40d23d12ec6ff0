package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taskward/taskward/internal/middleware"
	"github.com/taskward/taskward/internal/models"
	"github.com/taskward/taskward/internal/repository"
	"github.com/taskward/taskward/internal/service"
)

// TaskService defines the task operations required by the HTTP handlers.
// Every operation is scoped to the authenticated owner.
type TaskService interface {
	List(ctx context.Context, ownerID string) ([]models.Task, error)
	Create(ctx context.Context, ownerID string, in service.CreateTaskInput) (*models.Task, error)
	Toggle(ctx context.Context, ownerID, taskID string) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID string, in service.UpdateTaskInput) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}

// TaskHandler handles task CRUD requests. All routes sit behind the session
// auth middleware, so the owner id is always present in the context.
type TaskHandler struct {
	TaskService TaskService
}

// createTaskRequest is the JSON payload for task creation.
type createTaskRequest struct {
	Title    string  `json:"title"`
	Priority string  `json:"priority"`
	Category string  `json:"category"`
	DueDate  *string `json:"due_date"`
}

// updateTaskRequest is the JSON payload for a partial task update. Absent
// fields stay nil and keep their stored values.
type updateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority"`
	Category  *string `json:"category"`
	DueDate   *string `json:"due_date"`
}

// List handles GET /tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())

	tasks, err := h.TaskService.List(r.Context(), ownerID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	task, err := h.TaskService.Create(r.Context(), ownerID, service.CreateTaskInput{
		Title:    req.Title,
		Priority: req.Priority,
		Category: req.Category,
		DueDate:  req.DueDate,
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, map[string]any{"task": task})
	case errors.Is(err, service.ErrValidation):
		errorJSON(w, http.StatusBadRequest, validationMessage(err))
	default:
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Toggle handles PUT /tasks/{id}/toggle.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	task, err := h.TaskService.Toggle(r.Context(), ownerID, taskID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"task": task})
	case errors.Is(err, repository.ErrNotFound):
		errorJSON(w, http.StatusNotFound, "Task not found")
	default:
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Update handles PUT /tasks/{id} with a partial body.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	task, err := h.TaskService.Update(r.Context(), ownerID, taskID, service.UpdateTaskInput{
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
		Category:  req.Category,
		DueDate:   req.DueDate,
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"task": task})
	case errors.Is(err, service.ErrValidation):
		errorJSON(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, repository.ErrNotFound):
		errorJSON(w, http.StatusNotFound, "Task not found")
	default:
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Delete handles DELETE /tasks/{id}. Deleting an absent id is still a
// success, so retries are safe.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	if err := h.TaskService.Delete(r.Context(), ownerID, taskID); err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

// validationMessage strips the sentinel prefix from a wrapped validation
// error, leaving the field detail for the client.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
}
