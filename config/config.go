// Package config holds the gateway configuration.
//
// Configuration is resolved in three layers, later layers winning:
// built-in defaults, an optional YAML config file, and the LUCILLE_API_URL
// environment variable. The resolved Config is passed explicitly into the
// Brain client so tests can inject a mock endpoint without touching the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the public Brain API base URL.
	DefaultBaseURL = "https://lucille.world/api/brain"

	// EnvBaseURL is the environment variable that overrides the base URL.
	EnvBaseURL = "LUCILLE_API_URL"

	// DefaultTimeoutSeconds is the upstream HTTP timeout when the config
	// file does not set one.
	DefaultTimeoutSeconds = 30
)

// Config holds gateway settings.
type Config struct {
	// BaseURL is the Brain API base URL, without a trailing slash.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds bounds each upstream HTTP request.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogLevel:       "info",
	}
}

// Load resolves the configuration. path names an optional YAML config file;
// an empty path skips the file layer. The LUCILLE_API_URL environment
// variable is applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the resolved configuration for values the gateway cannot
// start with.
func (c *Config) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base URL %q", c.BaseURL)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// HTTPTimeout returns the upstream request timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
