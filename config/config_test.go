package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected string
	}{
		{
			name:     "default environment when APP_ENV not set",
			envValue: "",
			expected: DefaultEnv,
		},
		{
			name:     "custom environment when APP_ENV is set",
			envValue: "production",
			expected: "production",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Сохраняем оригинальное значение
			originalEnv := os.Getenv("APP_ENV")
			defer os.Setenv("APP_ENV", originalEnv)

			if tt.envValue == "" {
				os.Unsetenv("APP_ENV")
			} else {
				os.Setenv("APP_ENV", tt.envValue)
			}

			assert.Equal(t, tt.expected, GetEnv())
		})
	}
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.yaml")

	t.Run("successful load", func(t *testing.T) {
		configContent := `
pagerduty:
  routing_key: "0123456789abcdef0123456789abcdef"
  user_agent: "my-tool/1.0"
logger:
  level: "debug"
  format: "console"
metrics:
  enabled: true
  path: "/metrics"
  port: 9102
  service_name: "my-tool"
retry:
  max_retries: 5
  base_delay: "2s"
  backoff_factor: 1.5
`
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, "0123456789abcdef0123456789abcdef", cfg.PagerDuty.RoutingKey)
		assert.Equal(t, "my-tool/1.0", cfg.PagerDuty.UserAgent)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, "console", cfg.Logger.Format)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, 9102, cfg.Metrics.Port)
		assert.Equal(t, 5, cfg.Retry.MaxRetries)
		assert.Equal(t, 2*time.Second, cfg.Retry.BaseDelay)
		assert.Equal(t, 1.5, cfg.Retry.BackoffFactor)
	})

	t.Run("retry section defaults when omitted", func(t *testing.T) {
		minimalPath := filepath.Join(tempDir, "minimal.yaml")
		minimalContent := `
pagerduty:
  routing_key: "0123456789abcdef0123456789abcdef"
`
		require.NoError(t, os.WriteFile(minimalPath, []byte(minimalContent), 0644))

		cfg, err := Load(minimalPath)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Retry.MaxRetries)
		assert.Equal(t, time.Second, cfg.Retry.BaseDelay)
		assert.True(t, cfg.Retry.Jitter)
	})

	t.Run("config file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nonexistent.yaml"))
		assert.Error(t, err)
	})

	t.Run("validation failure without routing key", func(t *testing.T) {
		invalidPath := filepath.Join(tempDir, "invalid.yaml")
		invalidContent := `
pagerduty:
  user_agent: "my-tool/1.0"
`
		require.NoError(t, os.WriteFile(invalidPath, []byte(invalidContent), 0644))

		_, err := Load(invalidPath)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigValidation)
	})

	t.Run("validation failure with enabled metrics but no path", func(t *testing.T) {
		invalidPath := filepath.Join(tempDir, "invalid_metrics.yaml")
		invalidContent := `
pagerduty:
  routing_key: "0123456789abcdef0123456789abcdef"
metrics:
  enabled: true
`
		require.NoError(t, os.WriteFile(invalidPath, []byte(invalidContent), 0644))

		_, err := Load(invalidPath)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigValidation)
	})
}

func TestLoaderGetConfigPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
pagerduty:
  routing_key: "key"
`), 0644))

	loader := NewLoader(configPath)
	_, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, configPath, loader.GetConfigPath())
}
