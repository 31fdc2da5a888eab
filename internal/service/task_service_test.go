package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnexus/task-api/internal/domain"
	"github.com/cloudnexus/task-api/internal/store"
)

func TestTaskServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("assigns_id_and_defaults_status", func(t *testing.T) {
		t.Parallel()

		ts := &mockTaskStore{
			CreateFn: func(ctx context.Context, task *domain.Task) error {
				task.ID = 42
				return nil
			},
		}
		svc := NewTaskService(ts, nil)

		task, err := svc.Create(context.Background(), "Buy milk", nil, "")
		require.NoError(t, err)

		assert.Equal(t, int64(42), task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	})

	t.Run("echoes_input_fields", func(t *testing.T) {
		t.Parallel()

		description := "2% if available"
		ts := &mockTaskStore{
			CreateFn: func(ctx context.Context, task *domain.Task) error {
				task.ID = 1
				return nil
			},
		}
		svc := NewTaskService(ts, nil)

		task, err := svc.Create(context.Background(), "Buy milk", &description, domain.TaskStatusCompleted)
		require.NoError(t, err)

		require.NotNil(t, task.Description)
		assert.Equal(t, description, *task.Description)
		assert.Equal(t, domain.TaskStatusCompleted, task.Status)
	})

	t.Run("rejects_empty_title_before_store", func(t *testing.T) {
		t.Parallel()

		storeCalled := false
		ts := &mockTaskStore{
			CreateFn: func(ctx context.Context, task *domain.Task) error {
				storeCalled = true
				return nil
			},
		}
		svc := NewTaskService(ts, nil)

		_, err := svc.Create(context.Background(), "", nil, domain.TaskStatusPending)
		assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
		assert.False(t, storeCalled, "store must not be reached on invalid input")
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		t.Parallel()

		svc := NewTaskService(&mockTaskStore{}, nil)

		_, err := svc.Create(context.Background(), "Buy milk", nil, "archived")
		assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
	})

	t.Run("propagates_store_errors", func(t *testing.T) {
		t.Parallel()

		ts := &mockTaskStore{
			CreateFn: func(ctx context.Context, task *domain.Task) error {
				return store.ErrUnavailable
			},
		}
		svc := NewTaskService(ts, nil)

		_, err := svc.Create(context.Background(), "Buy milk", nil, "")
		assert.ErrorIs(t, err, store.ErrUnavailable)
	})
}

func TestTaskServiceGet(t *testing.T) {
	t.Parallel()

	t.Run("returns_task", func(t *testing.T) {
		t.Parallel()

		ts := &mockTaskStore{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return &domain.Task{ID: id, Title: "Buy milk", Status: domain.TaskStatusPending}, nil
			},
		}
		svc := NewTaskService(ts, nil)

		task, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), task.ID)
	})

	t.Run("wraps_not_found", func(t *testing.T) {
		t.Parallel()

		svc := NewTaskService(&mockTaskStore{}, nil)

		_, err := svc.Get(context.Background(), 9999)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskServiceList(t *testing.T) {
	t.Parallel()

	t.Run("passes_filter_through", func(t *testing.T) {
		t.Parallel()

		var gotParams store.ListParams
		completed := domain.TaskStatusCompleted
		ts := &mockTaskStore{
			ListFn: func(ctx context.Context, params store.ListParams) ([]domain.Task, error) {
				gotParams = params
				return []domain.Task{{ID: 2, Title: "Done", Status: completed}}, nil
			},
		}
		svc := NewTaskService(ts, nil)

		tasks, err := svc.List(context.Background(), store.ListParams{Limit: 10, Status: &completed})
		require.NoError(t, err)

		require.Len(t, tasks, 1)
		require.NotNil(t, gotParams.Status)
		assert.Equal(t, completed, *gotParams.Status)
	})

	t.Run("propagates_store_errors", func(t *testing.T) {
		t.Parallel()

		ts := &mockTaskStore{
			ListFn: func(ctx context.Context, params store.ListParams) ([]domain.Task, error) {
				return nil, errors.New("connection reset")
			},
		}
		svc := NewTaskService(ts, nil)

		_, err := svc.List(context.Background(), store.ListParams{})
		assert.Error(t, err)
	})
}
