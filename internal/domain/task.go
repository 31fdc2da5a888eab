package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// maxTitleLength matches the VARCHAR(255) column constraint on tasks.title.
const maxTitleLength = 255

// Common validation errors for Task
var (
	ErrEmptyTaskTitle    = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong  = errors.New("task title exceeds maximum length")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Task represents a single to-do item. It is created once and read-only
// thereafter; no update operation exists in the current contract, so
// UpdatedAt always equals CreatedAt. IsActive is a soft-delete flag used
// by the store to exclude rows from queries; it is never exposed through
// the API representation.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	IsActive    bool       `json:"-"`
}

// NewTask creates a new Task with the given title, optional description,
// and status. An empty status defaults to pending. The ID is zero until
// the store assigns one on insert. Returns an error if validation fails.
func NewTask(title string, description *string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}

	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsActive:    true,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if len(t.Title) > maxTitleLength {
		return ErrTaskTitleTooLong
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// IsValidTaskStatus checks if the given status is a valid TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts a raw string into a TaskStatus.
// Returns ErrInvalidTaskStatus if the value is not one of the
// three enumerated statuses.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !IsValidTaskStatus(status) {
		return "", ErrInvalidTaskStatus
	}
	return status, nil
}
