package config

import (
	"fmt"
	"os"
	"time"
)

// Default values for settings that are not provided.
const (
	DefaultServerPort      = ":8080"
	DefaultCORSAllowOrigin = "*"
	DefaultUpstreamURL     = "https://api.openai.com/v1/chat/completions"
	DefaultUpstreamTimeout = 30 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// CORS header values sent on every response.
const (
	CORSAllowMethods = "POST, OPTIONS"
	CORSAllowHeaders = "Content-Type, Authorization"
)

// Config holds application configuration loaded from environment and file.
// Priority: Env vars → config.toml → defaults.
// A Config is resolved once at startup and never mutated afterwards.
type Config struct {
	// OpenAIAPIKey is the server-side secret injected into upstream requests.
	// Only read from the environment.
	OpenAIAPIKey string

	// CORSAllowOrigin is the Access-Control-Allow-Origin value
	CORSAllowOrigin string

	// UpstreamURL is the chat completions endpoint requests are forwarded to
	UpstreamURL string

	// UpstreamTimeout bounds a single upstream exchange, body read included
	UpstreamTimeout time.Duration

	// ServerPort is the address to bind the standalone server to (e.g., ":8080")
	ServerPort string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from file and environment variables.
// Environment variables override file config values.
func Load() (*Config, error) {
	fileConfig, err := LoadFile(ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return FromSources(os.Getenv, fileConfig)
}

// FromSources builds a Config from an environment lookup and a parsed file.
func FromSources(getenv func(string) string, fileConfig *FileConfig) (*Config, error) {
	if fileConfig == nil {
		fileConfig = &FileConfig{}
	}

	timeout, err := getEnvDurationOrFile(getenv, "UPSTREAM_TIMEOUT", fileConfig.UpstreamTimeout, DefaultUpstreamTimeout)
	if err != nil {
		return nil, err
	}

	return &Config{
		OpenAIAPIKey:    getenv("OPENAI_API_KEY"),
		CORSAllowOrigin: getEnvOrFile(getenv, "CORS_ALLOW_ORIGIN", fileConfig.CORSAllowOrigin, DefaultCORSAllowOrigin),
		UpstreamURL:     getEnvOrFile(getenv, "UPSTREAM_URL", fileConfig.UpstreamURL, DefaultUpstreamURL),
		UpstreamTimeout: timeout,
		ServerPort:      getEnvOrFile(getenv, "SERVER_PORT", fileConfig.ServerPort, DefaultServerPort),
		LogLevel:        getEnvOrFile(getenv, "LOG_LEVEL", fileConfig.LogLevel, DefaultLogLevel),
		LogFormat:       getEnvOrFile(getenv, "LOG_FORMAT", fileConfig.LogFormat, DefaultLogFormat),
	}, nil
}

// HasAPIKey reports whether the upstream secret is configured.
func (c *Config) HasAPIKey() bool {
	return c.OpenAIAPIKey != ""
}

// CORSHeaders returns the cross-origin header set. The map is freshly
// allocated so callers may add to it.
func (c *Config) CORSHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  c.CORSAllowOrigin,
		"Access-Control-Allow-Methods": CORSAllowMethods,
		"Access-Control-Allow-Headers": CORSAllowHeaders,
	}
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(getenv func(string) string, key, fileValue, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvDurationOrFile parses a Go duration from env, file, or default.
// Zero or negative durations are rejected.
func getEnvDurationOrFile(getenv func(string) string, key, fileValue string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnvOrFile(getenv, key, fileValue, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}
