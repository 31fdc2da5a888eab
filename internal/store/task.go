// Package store defines the persistence interfaces and errors shared by
// all storage backends.
package store

import (
	"context"

	"github.com/cloudnexus/task-api/internal/domain"
)

// MaxListLimit bounds a single list query to prevent unbounded scans.
const MaxListLimit = 100

// DefaultListLimit is used when the caller does not specify a limit.
const DefaultListLimit = 100

// ListParams holds the pagination and filter parameters for listing tasks.
// A nil Status means no status filter is applied.
type ListParams struct {
	Offset int
	Limit  int
	Status *domain.TaskStatus
}

// Normalize clamps the parameters to sane bounds: negative offsets become
// zero and the limit is forced into [1, MaxListLimit].
func (p ListParams) Normalize() ListParams {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}
	return p
}

// TaskStore defines the persistence operations for tasks. Implementations
// must be safe for concurrent use; ordering of concurrent creates is
// governed only by the store's own ID sequencing.
type TaskStore interface {
	// Create saves a new task, assigning its ID and persisting the
	// creation timestamps. The task is mutated in place with the
	// store-assigned values. Returns a validation error if the task
	// data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List returns active tasks ordered by ID ascending, honoring the
	// given pagination and optional status filter. An empty result is a
	// non-nil empty slice, not an error.
	List(ctx context.Context, params ListParams) ([]domain.Task, error)

	// Ping verifies connectivity to the underlying storage.
	// Returns ErrUnavailable (wrapped) if the store cannot be reached.
	Ping(ctx context.Context) error
}
