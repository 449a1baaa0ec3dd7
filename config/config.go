// Package config загружает конфигурацию библиотеки из YAML-файла и
// переменных окружения.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/zynerotech/pagerduty/eventsv2"
	"github.com/zynerotech/pagerduty/logger"
	"github.com/zynerotech/pagerduty/metrics"
	"github.com/zynerotech/pagerduty/retry"
)

// Custom error types for better error handling
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrConfigValidation = errors.New("config validation failed")
	ErrConfigUnmarshal  = errors.New("failed to unmarshal config")
)

const (
	// DefaultEnv значение окружения по умолчанию
	DefaultEnv = "dev"
	// ConfigDir директория с конфигурационными файлами
	ConfigDir = "configs"
)

// Config — полная конфигурация библиотеки.
type Config struct {
	PagerDuty eventsv2.Config `mapstructure:"pagerduty"`
	Logger    logger.Config   `mapstructure:"logger"`
	Metrics   metrics.Config  `mapstructure:"metrics"`
	Retry     retry.Policy    `mapstructure:"retry"`
}

// Validate проверяет конфигурацию.
func (c *Config) Validate() error {
	if err := c.PagerDuty.Validate(); err != nil {
		return fmt.Errorf("pagerduty: %w", err)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return errors.New("metrics: path is required when metrics are enabled")
	}
	if c.Retry.MaxRetries < 0 {
		return errors.New("retry: max_retries must not be negative")
	}
	return nil
}

// getEnv возвращает текущее окружение
func getEnv() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return DefaultEnv
}

// getConfigPath возвращает путь к конфигурационному файлу
func getConfigPath() string {
	env := getEnv()
	return filepath.Join(ConfigDir, fmt.Sprintf("%s.yaml", env))
}

// Loader предоставляет функциональность для загрузки конфигурации
type Loader struct {
	viper *viper.Viper
}

// NewLoader создает новый загрузчик конфигурации
func NewLoader(configPath string) *Loader {
	v := viper.New()

	// Если путь не указан, используем путь по умолчанию
	if configPath == "" {
		configPath = getConfigPath()
	}

	v.SetConfigFile(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")

	return &Loader{
		viper: v,
	}
}

// Load загружает конфигурацию из файла.
func (l *Loader) Load() (*Config, error) {
	if err := l.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{
		Retry: retry.DefaultPolicy(),
	}
	if err := l.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnmarshal, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigValidation, err)
	}

	return cfg, nil
}

// GetConfigPath возвращает путь к файлу конфигурации
func (l *Loader) GetConfigPath() string {
	return l.viper.ConfigFileUsed()
}

// WatchConfig запускает наблюдение за изменениями конфигурационного файла
func (l *Loader) WatchConfig() {
	l.viper.WatchConfig()
}

// OnConfigChange устанавливает callback для обработки изменений конфигурации
func (l *Loader) OnConfigChange(fn func()) {
	l.viper.OnConfigChange(func(e fsnotify.Event) {
		fn()
	})
}

// Load загружает конфигурацию из файла по указанному пути.
func Load(configPath string) (*Config, error) {
	loader := NewLoader(configPath)
	return loader.Load()
}

// GetEnv возвращает текущее окружение
func GetEnv() string {
	return getEnv()
}
