package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Kargones/cblogger/internal/constants"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger создаёт Logger по config.
// Output="file" пишет в файл с ротацией через lumberjack, иначе в os.Stderr.
// Неизвестный Output или ошибка подготовки файла приводят к выводу в stderr
// с предупреждением.
func NewLogger(config Config, opts ...HandlerOption) Logger {
	var w io.Writer

	switch config.Output {
	case OutputFile:
		w = newLumberjackWriter(config)
	case OutputStderr, "":
		w = os.Stderr
	default:
		bootstrapWarn("WARNING: неизвестный logging output %q, falling back to stderr\n", config.Output)
		w = os.Stderr
	}

	return NewLoggerWithWriter(config, w, opts...)
}

func newLumberjackWriter(config Config) io.Writer {
	if config.FilePath == "" {
		bootstrapWarn("WARNING: logging output=file but filePath is empty, falling back to stderr\n")
		return os.Stderr
	}

	dir := filepath.Dir(config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermStandard); err != nil {
			bootstrapWarn("WARNING: не удалось создать директорию логов %q: %v, falling back to stderr\n", dir, err)
			return os.Stderr
		}
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
}

// bootstrapWarn пишет в stderr до того, как логгер создан.
func bootstrapWarn(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...) //nolint:errcheck // bootstrap stderr
}

// NewLoggerWithWriter создаёт Logger, пишущий в w.
// opts применяются к handler по порядку.
func NewLoggerWithWriter(config Config, w io.Writer, opts ...HandlerOption) Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(config.Level)}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	for _, opt := range opts {
		if opt != nil {
			handler = opt(handler)
		}
	}

	return NewSlogAdapter(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
