package cblog

import (
	"context"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// Default возвращает общий логгер процесса.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault заменяет общий логгер. nil игнорируется.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Debug пишет DEBUG-запись через Default().
func Debug(key string, args ...any) {
	Default().dispatch(context.Background(), LevelDebug, key, args)
}

// Info пишет INFO-запись через Default().
func Info(key string, args ...any) {
	Default().dispatch(context.Background(), LevelInfo, key, args)
}

// Warn пишет WARN-запись через Default().
func Warn(key string, args ...any) {
	Default().dispatch(context.Background(), LevelWarn, key, args)
}

// Error пишет ERROR-запись через Default().
func Error(key string, args ...any) {
	Default().dispatch(context.Background(), LevelError, key, args)
}

// DebugContext пишет DEBUG-запись через Default().
func DebugContext(ctx context.Context, key string, args ...any) {
	Default().dispatch(ctx, LevelDebug, key, args)
}

// InfoContext пишет INFO-запись через Default().
func InfoContext(ctx context.Context, key string, args ...any) {
	Default().dispatch(ctx, LevelInfo, key, args)
}

// WarnContext пишет WARN-запись через Default().
func WarnContext(ctx context.Context, key string, args ...any) {
	Default().dispatch(ctx, LevelWarn, key, args)
}

// ErrorContext пишет ERROR-запись через Default().
func ErrorContext(ctx context.Context, key string, args ...any) {
	Default().dispatch(ctx, LevelError, key, args)
}

// Log пишет запись произвольного уровня через Default().
func Log(ctx context.Context, level Level, key string, args ...any) {
	Default().dispatch(ctx, level, key, args)
}

// Extend подключает алертер к Default().
func Extend(a Alerter) error {
	return Default().Extend(a)
}

// Unextend отключает алертер от Default().
func Unextend() error {
	return Default().Unextend()
}

// Attach подключает расширение к Default().
func Attach(kind ExtensionKind, ext any) error {
	return Default().Attach(kind, ext)
}

// AttachCrashReporter подключает crash reporter к Default().
func AttachCrashReporter(r CrashReporter) error {
	return Default().AttachCrashReporter(r)
}
