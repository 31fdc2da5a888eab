package awss3

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnexus/task-api/internal/storage"
)

// mockPutObjectAPI is a function-backed implementation of putObjectAPI.
type mockPutObjectAPI struct {
	PutObjectFn func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func (m *mockPutObjectAPI) PutObject(
	ctx context.Context,
	params *s3.PutObjectInput,
	optFns ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	return m.PutObjectFn(ctx, params, optFns...)
}

func newTestClient(api putObjectAPI, endpoint string) *Client {
	return &Client{
		api:      api,
		bucket:   "task-api-files",
		region:   "us-east-1",
		endpoint: endpoint,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClientPut(t *testing.T) {
	t.Parallel()

	var captured *s3.PutObjectInput
	api := &mockPutObjectAPI{
		PutObjectFn: func(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			captured = params
			return &s3.PutObjectOutput{}, nil
		},
	}

	client := newTestClient(api, "")
	url, err := client.Put(context.Background(), "uploads/20250101_120000_abcd1234_photo.jpg", "image/jpeg", strings.NewReader("bytes"))
	require.NoError(t, err)

	assert.Equal(t,
		"https://task-api-files.s3.us-east-1.amazonaws.com/uploads/20250101_120000_abcd1234_photo.jpg",
		url)

	require.NotNil(t, captured)
	assert.Equal(t, "task-api-files", *captured.Bucket)
	assert.Equal(t, "image/jpeg", *captured.ContentType)

	body, err := io.ReadAll(captured.Body)
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(body))
}

func TestClientPutOmitsEmptyContentType(t *testing.T) {
	t.Parallel()

	var captured *s3.PutObjectInput
	api := &mockPutObjectAPI{
		PutObjectFn: func(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			captured = params
			return &s3.PutObjectOutput{}, nil
		},
	}

	client := newTestClient(api, "")
	_, err := client.Put(context.Background(), "uploads/key", "", strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, captured.ContentType)
}

func TestClientPutWrapsFailures(t *testing.T) {
	t.Parallel()

	api := &mockPutObjectAPI{
		PutObjectFn: func(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			return nil, errors.New("AccessDenied: not authorized")
		},
	}

	client := newTestClient(api, "")
	_, err := client.Put(context.Background(), "uploads/key", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, storage.ErrUploadFailed)
}

func TestObjectURLWithCustomEndpoint(t *testing.T) {
	t.Parallel()

	client := newTestClient(nil, "http://localhost:9000/")
	assert.Equal(t,
		"http://localhost:9000/task-api-files/backups/tasks_backup_20250101_120000.json",
		client.objectURL("backups/tasks_backup_20250101_120000.json"))
}
