package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load.
const envPrefix = "TASKAPI"

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from config files. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origins", "*")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("upload.max_bytes", 10*1024*1024)

	// Configure to read from an optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Configure environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind critical environment variables
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", "TASKAPI_SERVER_PORT"},
		{"server.log_level", "TASKAPI_SERVER_LOG_LEVEL"},
		{"server.cors_origins", "TASKAPI_SERVER_CORS_ORIGINS"},
		{"database.url", "TASKAPI_DATABASE_URL"},
		{"storage.bucket", "TASKAPI_STORAGE_BUCKET"},
		{"storage.region", "TASKAPI_STORAGE_REGION"},
		{"storage.endpoint", "TASKAPI_STORAGE_ENDPOINT"},
		{"upload.max_bytes", "TASKAPI_UPLOAD_MAX_BYTES"},
		{"auth.api_token", "TASKAPI_AUTH_API_TOKEN"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	// Unmarshal and validate
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// CORSOriginList splits the configured comma-separated origins into a slice,
// trimming whitespace around each entry.
func (c ServerConfig) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
