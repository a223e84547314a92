// Package logging - структурированный журнал самих адаптеров (каналы алертинга,
// трейсинг, метрики, CLI). Консольный логгер cblog через него не пишет.
package logging

import "context"

// Logger - интерфейс структурированного логирования.
//
//	logger.Info("алерт отправлен", "key", key, "channel", "webhook")
//
// Реализации пишут в stderr или файл, никогда в stdout.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает Logger с атрибутами, добавляемыми в каждую запись.
	With(args ...any) Logger
}

// contextBinder реализуют логгеры, умеющие привязать context к записям.
type contextBinder interface {
	WithContext(ctx context.Context) Logger
}

// WithContext привязывает ctx к логгеру, если реализация это поддерживает,
// иначе возвращает l без изменений.
func WithContext(l Logger, ctx context.Context) Logger {
	if b, ok := l.(contextBinder); ok && ctx != nil {
		return b.WithContext(ctx)
	}
	return l
}
