package service

import (
	"context"
	"io"

	"github.com/cloudnexus/task-api/internal/domain"
	"github.com/cloudnexus/task-api/internal/store"
)

// mockTaskStore is a function-backed implementation of store.TaskStore.
type mockTaskStore struct {
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	ListFn    func(ctx context.Context, params store.ListParams) ([]domain.Task, error)
	PingFn    func(ctx context.Context) error
}

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *mockTaskStore) List(ctx context.Context, params store.ListParams) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return []domain.Task{}, nil
}

func (m *mockTaskStore) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
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
