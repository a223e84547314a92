package config

import (
	"errors"
	"fmt"

	"github.com/Kargones/cblogger/internal/pkg/logging"
)

// Ошибки секции logging.
var (
	ErrLogLevelInvalid  = errors.New("недопустимый уровень логирования")
	ErrLogFormatInvalid = errors.New("недопустимый формат логов")
	ErrLogOutputInvalid = errors.New("недопустимый вывод логов")
)

// LoggingConfig - журнал адаптеров (каналы алертинга, трейсинг, метрики).
type LoggingConfig struct {
	Level    string `yaml:"level" env:"CBL_LOG_LEVEL" env-default:"info"`
	Format   string `yaml:"format" env:"CBL_LOG_FORMAT" env-default:"text"`
	Output   string `yaml:"output" env:"CBL_LOG_OUTPUT" env-default:"stderr"`
	FilePath string `yaml:"filePath" env:"CBL_LOG_FILE_PATH"`

	MaxSize int `yaml:"maxSize" env:"CBL_LOG_MAX_SIZE" env-default:"100"`

	// MaxBackups, MaxAge и Compress без env-default: cleanenv применяет его к нулевым
	// полям после разбора YAML, а 0 и false здесь допустимые значения.
	// Значения по умолчанию задаёт defaultLoggingConfig.
	MaxBackups int `yaml:"maxBackups" env:"CBL_LOG_MAX_BACKUPS"`
	MaxAge     int `yaml:"maxAge" env:"CBL_LOG_MAX_AGE"`

	Compress bool `yaml:"compress" env:"CBL_LOG_COMPRESS"`
}

func defaultLoggingConfig() LoggingConfig {
	d := logging.DefaultConfig()
	return LoggingConfig{
		Level:      d.Level,
		Format:     d.Format,
		Output:     d.Output,
		FilePath:   d.FilePath,
		MaxSize:    d.MaxSize,
		MaxBackups: d.MaxBackups,
		MaxAge:     d.MaxAge,
		Compress:   d.Compress,
	}
}

// Validate проверяет значения перечислимых полей.
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return fmt.Errorf("%w: %q", ErrLogLevelInvalid, c.Level)
	}
	switch c.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrLogFormatInvalid, c.Format)
	}
	switch c.Output {
	case logging.OutputStderr, logging.OutputFile:
	default:
		return fmt.Errorf("%w: %q", ErrLogOutputInvalid, c.Output)
	}
	return nil
}

// ToLogging возвращает конфигурацию пакета logging.
func (c *LoggingConfig) ToLogging() logging.Config {
	return logging.Config{
		Level:      c.Level,
		Format:     c.Format,
		Output:     c.Output,
		FilePath:   c.FilePath,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
}
