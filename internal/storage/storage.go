// Package storage defines the object storage boundary used for file
// uploads and task backups. Implementations talk to an external object
// store; failures there must never corrupt task store state.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// keyTimeFormat is the timestamp layout embedded in object keys.
const keyTimeFormat = "20060102_150405"

// Key prefixes for the two object families written by this application.
const (
	UploadPrefix = "uploads"
	BackupPrefix = "backups"
)

// ObjectStore abstracts the external object storage backend. Put streams the
// body to the backend under the given key and returns the public URL of the
// stored object. Callers must treat latency as unbounded and apply their own
// timeout via ctx.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// UploadKey builds a collision-resistant object key for an uploaded file,
// embedding a UTC timestamp and a short random ID ahead of the original
// filename. Any directory components in the filename are stripped.
func UploadKey(filename string) string {
	base := path.Base(filename)
	timestamp := time.Now().UTC().Format(keyTimeFormat)
	uniqueID := uuid.NewString()[:8]
	return fmt.Sprintf("%s/%s_%s_%s", UploadPrefix, timestamp, uniqueID, base)
}

// BackupKey builds the object key for a backup archive of the given table.
func BackupKey(table string) string {
	timestamp := time.Now().UTC().Format(keyTimeFormat)
	return fmt.Sprintf("%s/%s_backup_%s.json", BackupPrefix, table, timestamp)
}
