package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cloudnexus/task-api/internal/api/shared"
	"github.com/cloudnexus/task-api/internal/domain"
	"github.com/cloudnexus/task-api/internal/storage"
	"github.com/cloudnexus/task-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyTaskTitle),
		errors.Is(err, domain.ErrTaskTitleTooLong),
		errors.Is(err, domain.ErrInvalidTaskStatus),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Infrastructure failures
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	case errors.Is(err, storage.ErrUploadFailed),
		errors.Is(err, storage.ErrBackupFailed):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Infrastructure failures map to a generic
// message so internal topology is never exposed.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Validation errors carry their own client-safe wording
	case errors.Is(err, domain.ErrEmptyTaskTitle):
		return "Title cannot be empty"

	case errors.Is(err, domain.ErrTaskTitleTooLong):
		return "Title exceeds maximum length"

	case errors.Is(err, domain.ErrInvalidTaskStatus):
		return "Invalid status. Must be one of: pending, in_progress, completed"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	// Infrastructure errors get generic messages
	case errors.Is(err, store.ErrUnavailable):
		return "Service temporarily unavailable"

	case errors.Is(err, storage.ErrBackupFailed):
		return "Failed to create backup"

	case errors.Is(err, storage.ErrUploadFailed):
		return "Failed to upload file"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validator errors
// and returns a user-friendly message naming the offending field.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for an error escaping a handler: the
// status from MapErrorToStatusCode and the sanitized message, with the raw
// error kept to the logs. An empty userMessage falls back to the mapped
// safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
