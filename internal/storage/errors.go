package storage

import "errors"

// Common storage errors used across gateway implementations.
var (
	// ErrUploadFailed is returned when a file cannot be written to the
	// object store, whether from a transport or an auth failure.
	ErrUploadFailed = errors.New("upload failed")

	// ErrBackupFailed is returned when a backup archive cannot be produced,
	// either because reading the task collection or writing the archive failed.
	ErrBackupFailed = errors.New("backup failed")
)
