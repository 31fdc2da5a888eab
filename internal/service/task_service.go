// Package service contains the application services composing the task
// store and the object storage gateway. Handlers depend on the interfaces
// declared here rather than on concrete implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudnexus/task-api/internal/domain"
	"github.com/cloudnexus/task-api/internal/platform/logger"
	"github.com/cloudnexus/task-api/internal/store"
)

// TaskService defines the task lifecycle operations exposed to the API layer.
type TaskService interface {
	// Create validates the input, builds a new task (defaulting the status
	// to pending when empty), and persists it. The returned task carries
	// the store-assigned ID and timestamps.
	Create(ctx context.Context, title string, description *string, status domain.TaskStatus) (*domain.Task, error)

	// List returns active tasks for the given pagination and optional
	// status filter.
	List(ctx context.Context, params store.ListParams) ([]domain.Task, error)

	// Get returns the task with the given ID.
	// Returns store.ErrTaskNotFound if it does not exist.
	Get(ctx context.Context, id int64) (*domain.Task, error)
}

// taskService is the production TaskService backed by a TaskStore.
type taskService struct {
	tasks store.TaskStore
	log   *slog.Logger
}

// NewTaskService creates a TaskService backed by the given store.
// If log is nil, a default logger will be used.
func NewTaskService(tasks store.TaskStore, log *slog.Logger) TaskService {
	if tasks == nil {
		panic("tasks store cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &taskService{
		tasks: tasks,
		log:   log.With(slog.String("component", "task_service")),
	}
}

// Create implements TaskService.Create
func (s *taskService) Create(
	ctx context.Context,
	title string,
	description *string,
	status domain.TaskStatus,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.log)

	task, err := domain.NewTask(title, description, status)
	if err != nil {
		log.Warn("task rejected by domain validation", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List implements TaskService.List
func (s *taskService) List(ctx context.Context, params store.ListParams) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get implements TaskService.Get
func (s *taskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}
