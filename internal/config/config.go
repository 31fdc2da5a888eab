// Package config loads and validates the application configuration from
// environment variables and an optional config file.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"  validate:"required"`
	Upload   UploadConfig   `mapstructure:"upload"   validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// CORSOrigins is a comma-separated list of allowed cross-origin values.
	CORSOrigins string `mapstructure:"cors_origins"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// StorageConfig contains the object storage settings for uploads and backups.
type StorageConfig struct {
	Bucket string `mapstructure:"bucket" validate:"required"`
	Region string `mapstructure:"region" validate:"required"`
	// Endpoint overrides the storage endpoint for S3-compatible servers.
	// Empty means the default AWS endpoint for the configured region.
	Endpoint string `mapstructure:"endpoint"`
}

// UploadConfig contains file upload limits.
type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes" validate:"required,gt=0"`
}

// AuthConfig contains the shared static API token settings. An empty token
// disables the token check entirely.
type AuthConfig struct {
	APIToken string `mapstructure:"api_token"`
}
