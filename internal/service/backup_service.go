package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudnexus/task-api/internal/domain"
	"github.com/cloudnexus/task-api/internal/platform/logger"
	"github.com/cloudnexus/task-api/internal/storage"
	"github.com/cloudnexus/task-api/internal/store"
)

// backupTableName is the logical table name recorded in backup archives.
const backupTableName = "tasks"

// BackupResult describes a completed backup archive.
type BackupResult struct {
	URL         string
	RecordCount int
	Timestamp   time.Time
}

// BackupService produces a point-in-time JSON archive of the task
// collection in the object store.
type BackupService interface {
	// BackupAll reads the full active task collection, serializes it, and
	// writes it as a single object under the backups prefix. The read is
	// paged and not transactional with respect to concurrent creates: it
	// captures whatever exists at call time.
	BackupAll(ctx context.Context) (*BackupResult, error)
}

// backupService is the production BackupService composing the task store
// and the object storage gateway.
type backupService struct {
	tasks   store.TaskStore
	objects storage.ObjectStore
	log     *slog.Logger
}

// NewBackupService creates a BackupService over the given store and gateway.
// If log is nil, a default logger will be used.
func NewBackupService(tasks store.TaskStore, objects storage.ObjectStore, log *slog.Logger) BackupService {
	if tasks == nil {
		panic("tasks store cannot be nil")
	}
	if objects == nil {
		panic("object store cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &backupService{
		tasks:   tasks,
		objects: objects,
		log:     log.With(slog.String("component", "backup_service")),
	}
}

// backupRecord is the archived representation of a task. Unlike the API
// representation it includes the soft-delete flag, so an archive round-trips
// the full row.
type backupRecord struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	IsActive    bool    `json:"is_active"`
}

// backupArchive is the portable envelope written to the object store.
type backupArchive struct {
	BackupTimestamp string         `json:"backup_timestamp"`
	TableName       string         `json:"table_name"`
	RecordCount     int            `json:"record_count"`
	Data            []backupRecord `json:"data"`
}

// BackupAll implements BackupService.BackupAll
func (s *backupService) BackupAll(ctx context.Context) (*BackupResult, error) {
	log := logger.FromContextOrDefault(ctx, s.log)

	tasks, err := s.collectAll(ctx)
	if err != nil {
		log.Error("failed to read tasks for backup", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: reading tasks: %v", storage.ErrBackupFailed, err)
	}

	now := time.Now().UTC()
	archive := backupArchive{
		BackupTimestamp: now.Format(time.RFC3339),
		TableName:       backupTableName,
		RecordCount:     len(tasks),
		Data:            make([]backupRecord, 0, len(tasks)),
	}
	for _, task := range tasks {
		archive.Data = append(archive.Data, toBackupRecord(task))
	}

	payload, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: serializing archive: %v", storage.ErrBackupFailed, err)
	}

	key := storage.BackupKey(backupTableName)
	url, err := s.objects.Put(ctx, key, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Error("failed to write backup archive",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return nil, fmt.Errorf("%w: writing archive: %v", storage.ErrBackupFailed, err)
	}

	log.Info("backup created successfully",
		slog.String("key", key),
		slog.Int("record_count", len(tasks)))

	return &BackupResult{
		URL:         url,
		RecordCount: len(tasks),
		Timestamp:   now,
	}, nil
}

// collectAll pages through the task store until the collection is exhausted.
// Pages are read with the store's maximum limit; there is no snapshot
// isolation across pages beyond the store's own read consistency.
func (s *backupService) collectAll(ctx context.Context) ([]domain.Task, error) {
	var all []domain.Task

	for offset := 0; ; offset += store.MaxListLimit {
		page, err := s.tasks.List(ctx, store.ListParams{Offset: offset, Limit: store.MaxListLimit})
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
		if len(page) < store.MaxListLimit {
			return all, nil
		}
	}
}

// toBackupRecord converts a domain task into its archived representation.
func toBackupRecord(task domain.Task) backupRecord {
	return backupRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339Nano),
		IsActive:    task.IsActive,
	}
}
