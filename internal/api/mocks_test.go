package api

import (
	"context"
	"io"

	"github.com/cloudnexus/task-api/internal/domain"
	"github.com/cloudnexus/task-api/internal/service"
	"github.com/cloudnexus/task-api/internal/store"
)

// mockTaskService is a function-backed implementation of service.TaskService.
type mockTaskService struct {
	CreateFn func(ctx context.Context, title string, description *string, status domain.TaskStatus) (*domain.Task, error)
	ListFn   func(ctx context.Context, params store.ListParams) ([]domain.Task, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Task, error)
}

func (m *mockTaskService) Create(
	ctx context.Context,
	title string,
	description *string,
	status domain.TaskStatus,
) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, title, description, status)
	}
	return domain.NewTask(title, description, status)
}

func (m *mockTaskService) List(ctx context.Context, params store.ListParams) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return []domain.Task{}, nil
}

func (m *mockTaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

// mockBackupService is a function-backed implementation of service.BackupService.
type mockBackupService struct {
	BackupAllFn func(ctx context.Context) (*service.BackupResult, error)
}

func (m *mockBackupService) BackupAll(ctx context.Context) (*service.BackupResult, error) {
	if m.BackupAllFn != nil {
		return m.BackupAllFn(ctx)
	}
	return &service.BackupResult{}, nil
}

// mockObjectStore is a function-backed implementation of storage.ObjectStore.
type mockObjectStore struct {
	PutFn func(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

func (m *mockObjectStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if m.PutFn != nil {
		return m.PutFn(ctx, key, contentType, body)
	}
	return "", nil
}

// mockTaskStore is a function-backed implementation of store.TaskStore for
// the health handler, which probes the store directly.
type mockTaskStore struct {
	PingFn func(ctx context.Context) error
}

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	return nil
}

func (m *mockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return nil, store.ErrTaskNotFound
}

func (m *mockTaskStore) List(ctx context.Context, params store.ListParams) ([]domain.Task, error) {
	return []domain.Task{}, nil
}

func (m *mockTaskStore) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}
