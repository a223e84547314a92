// Package config загружает конфигурацию cblogger.
//
// Порядок источников: значения по умолчанию, затем YAML файл из
// CBL_CONFIG_FILE (если задан), затем переменные окружения CBL_*.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Kargones/cblogger/internal/pkg/apperrors"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile - переменная окружения с путём к YAML файлу конфигурации.
const EnvConfigFile = "CBL_CONFIG_FILE"

// Config - конфигурация приложения.
type Config struct {
	// ConfigFile - путь, из которого прочитан YAML. Пустой, если файла не было.
	ConfigFile string `yaml:"-"`

	Logging  LoggingConfig  `yaml:"logging"`
	Alerting AlertingConfig `yaml:"alerting"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// Default возвращает конфигурацию по умолчанию: всё, кроме логирования в stderr, выключено.
func Default() *Config {
	return &Config{
		Logging:  defaultLoggingConfig(),
		Alerting: defaultAlertingConfig(),
		Tracing:  defaultTracingConfig(),
		Metrics:  defaultMetricsConfig(),
	}
}

// Load читает конфигурацию из файла CBL_CONFIG_FILE и переменных окружения.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(EnvConfigFile))
}

// LoadFile читает конфигурацию из path (пустой path пропускается)
// и переопределяет её переменными окружения. Результат проверяется Validate.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
				fmt.Sprintf("не удалось прочитать файл конфигурации %s", path), err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrConfigParse,
				fmt.Sprintf("ошибка парсинга %s", path), err)
		}
		cfg.ConfigFile = path
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigParse,
			"ошибка чтения переменных окружения", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate,
			"конфигурация невалидна", err)
	}
	return cfg, nil
}

// Validate проверяет все секции и возвращает все найденные ошибки.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	if err := c.Alerting.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("alerting: %w", err))
	}
	if err := c.Tracing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tracing: %w", err))
	}
	if err := c.Metrics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("metrics: %w", err))
	}
	return errors.Join(errs...)
}
