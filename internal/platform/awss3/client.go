// Package awss3 provides the AWS S3 implementation of the storage.ObjectStore
// interface used for file uploads and backup archives.
package awss3

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/cloudnexus/task-api/internal/config"
	"github.com/cloudnexus/task-api/internal/storage"
)

// putObjectAPI is the subset of the S3 client this package depends on.
// Narrowing the dependency keeps the client testable without a live bucket.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Client implements storage.ObjectStore on top of an S3 bucket.
type Client struct {
	api      putObjectAPI
	bucket   string
	region   string
	endpoint string
	log      *slog.Logger
}

// New creates a Client for the configured bucket. Credentials are resolved
// through the default AWS chain (environment, shared config, instance role).
// A non-empty endpoint switches the client to path-style addressing for
// S3-compatible servers.
func New(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (*Client, error) {
	if log == nil {
		log = slog.Default()
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{
		api:      api,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
		log:      log.With(slog.String("component", "s3_client")),
	}, nil
}

// Ensure Client implements storage.ObjectStore interface
var _ storage.ObjectStore = (*Client)(nil)

// Put implements storage.ObjectStore.Put
// It streams the body to the bucket under the given key and returns the
// public object URL. Transport and auth failures are wrapped in
// storage.ErrUploadFailed.
func (c *Client) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	c.log.Debug("uploading object", slog.String("key", key))

	if _, err := c.api.PutObject(ctx, input); err != nil {
		c.log.Error("failed to upload object",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return "", fmt.Errorf("%w: %v", storage.ErrUploadFailed, err)
	}

	url := c.objectURL(key)
	c.log.Info("object uploaded successfully", slog.String("key", key))
	return url, nil
}

// objectURL constructs the public URL of a stored object. The virtual-hosted
// AWS form is used unless a custom endpoint is configured, in which case the
// path-style form matches the addressing mode set in New.
func (c *Client) objectURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
