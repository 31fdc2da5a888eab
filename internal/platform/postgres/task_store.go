// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces using database/sql with the pgx driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cloudnexus/task-api/internal/domain"
	"github.com/cloudnexus/task-api/internal/platform/logger"
	"github.com/cloudnexus/task-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a PostgreSQL
// database as the storage backend.
type TaskStore struct {
	db  store.DBTX
	log *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If log is nil, a default logger
// will be used.
func NewTaskStore(db store.DBTX, log *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &TaskStore{
		db:  db,
		log: log.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
// It saves a new task to the database and fills in the store-assigned ID.
// Returns validation errors from the domain Task if data is invalid.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.log)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO tasks (title, description, status, created_at, updated_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
		task.IsActive,
	).Scan(&task.ID)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return MapError(err)
	}

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// It retrieves an active task by its unique ID.
// Returns store.ErrTaskNotFound if the task does not exist or was soft-deleted.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.log)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	query := `
		SELECT id, title, description, status, created_at, updated_at, is_active
		FROM tasks
		WHERE id = $1 AND is_active = TRUE
	`

	var task domain.Task
	var status string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.IsActive,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	task.Status = domain.TaskStatus(status)

	return &task, nil
}

// List implements store.TaskStore.List
// It returns active tasks ordered by ID ascending, applying the normalized
// pagination bounds and the optional status filter.
func (s *TaskStore) List(ctx context.Context, params store.ListParams) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.log)

	params = params.Normalize()

	query := `
		SELECT id, title, description, status, created_at, updated_at, is_active
		FROM tasks
		WHERE is_active = TRUE
	`
	args := []any{}

	if params.Status != nil {
		args = append(args, string(*params.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	args = append(args, params.Limit)
	query += fmt.Sprintf(" ORDER BY id ASC LIMIT $%d", len(args))
	args = append(args, params.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.Int("offset", params.Offset),
			slog.Int("limit", params.Limit))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	tasks := make([]domain.Task, 0, params.Limit)
	for rows.Next() {
		var task domain.Task
		var status string

		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&status,
			&task.CreatedAt,
			&task.UpdatedAt,
			&task.IsActive,
		); err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		task.Status = domain.TaskStatus(status)
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("row iteration failed", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("tasks listed",
		slog.Int("count", len(tasks)),
		slog.Int("offset", params.Offset),
		slog.Int("limit", params.Limit))
	return tasks, nil
}

// Ping implements store.TaskStore.Ping
// It runs a trivial query to verify connectivity to the database.
// Any failure is wrapped in store.ErrUnavailable.
func (s *TaskStore) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}
