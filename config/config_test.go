package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "base_url: http://localhost:8080/brain\ntimeout_seconds: 5\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/brain", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://from-file\n"), 0o600))
	t.Setenv(EnvBaseURL, "http://from-env:9999")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:9999", cfg.BaseURL)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  string
	}{
		{name: "bad yaml", yaml: "base_url: [unterminated"},
		{name: "bad url", env: "not a url"},
		{name: "zero timeout", yaml: "timeout_seconds: 0"},
		{name: "negative timeout", yaml: "timeout_seconds: -1"},
		{name: "bad log level", yaml: "log_level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.yaml != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))
			}
			if tt.env != "" {
				t.Setenv(EnvBaseURL, tt.env)
			}

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
