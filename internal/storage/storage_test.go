package storage

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadKey(t *testing.T) {
	t.Parallel()

	key := UploadKey("report.pdf")
	assert.Regexp(t, regexp.MustCompile(`^uploads/\d{8}_\d{6}_[0-9a-f]{8}_report\.pdf$`), key)

	// Directory components must not survive into the key
	key = UploadKey("../../etc/passwd")
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.NotContains(t, key, "..")
	assert.True(t, strings.HasSuffix(key, "_passwd"))
}

func TestUploadKeyIsCollisionResistant(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := UploadKey("photo.jpg")
		assert.False(t, seen[key], "duplicate key generated: %s", key)
		seen[key] = true
	}
}

func TestBackupKey(t *testing.T) {
	t.Parallel()

	key := BackupKey("tasks")
	assert.Regexp(t, regexp.MustCompile(`^backups/tasks_backup_\d{8}_\d{6}\.json$`), key)
}
