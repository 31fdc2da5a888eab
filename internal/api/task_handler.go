package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cloudnexus/task-api/internal/api/shared"
	"github.com/cloudnexus/task-api/internal/domain"
	"github.com/cloudnexus/task-api/internal/service"
	"github.com/cloudnexus/task-api/internal/store"
)

// CreateTaskRequest represents the request body for creating a new task
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=255"`
	Description *string `json:"description"`
	Status      string  `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	log         *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		log:         log.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /items requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Validation error: "+SanitizeValidationError(err), err)
		return
	}

	task, err := h.taskService.Create(r.Context(), req.Title, req.Description, domain.TaskStatus(req.Status))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /items requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	params, err := parseListQuery(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.List(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch items")
		return
	}

	// An empty result is a 200 with an empty array, never an error
	response := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		response = append(response, taskToResponse(&tasks[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetTask handles GET /items/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.log.Debug("invalid task ID in path", slog.String("value", idParam))
		HandleAPIError(w, r, domain.NewValidationError("id", "must be an integer", domain.ErrInvalidID), "")
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// parseListQuery extracts skip/limit/status from the query string. Malformed
// values produce validation errors that map to a 400 response; an
// over-large limit is clamped by the store rather than rejected.
func parseListQuery(r *http.Request) (store.ListParams, error) {
	params := store.ListParams{Limit: store.DefaultListLimit}
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return params, domain.NewValidationError("skip", "must be a non-negative integer", nil)
		}
		params.Offset = skip
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return params, domain.NewValidationError("limit", "must be a positive integer", nil)
		}
		params.Limit = limit
	}

	if raw := query.Get("status"); raw != "" {
		status, err := domain.ParseTaskStatus(raw)
		if err != nil {
			return params, err
		}
		params.Status = &status
	}

	return params.Normalize(), nil
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
