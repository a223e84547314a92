package logging

import (
	"context"
	"log/slog"
)

// SlogAdapter реализует Logger поверх slog.
// Привязанный context передаётся в slog.Handler каждой записи.
type SlogAdapter struct {
	logger *slog.Logger
	ctx    context.Context
}

// NewSlogAdapter оборачивает slog.Logger. Nil заменяется на slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
		logger.Warn("logging: nil slog.Logger passed to NewSlogAdapter, using default")
	}
	return &SlogAdapter{logger: logger, ctx: context.Background()}
}

func (s *SlogAdapter) Debug(msg string, args ...any) {
	s.logger.Log(s.ctx, slog.LevelDebug, msg, args...)
}

func (s *SlogAdapter) Info(msg string, args ...any) {
	s.logger.Log(s.ctx, slog.LevelInfo, msg, args...)
}

func (s *SlogAdapter) Warn(msg string, args ...any) {
	s.logger.Log(s.ctx, slog.LevelWarn, msg, args...)
}

func (s *SlogAdapter) Error(msg string, args ...any) {
	s.logger.Log(s.ctx, slog.LevelError, msg, args...)
}

// With возвращает новый Logger с добавленными атрибутами.
func (s *SlogAdapter) With(args ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(args...), ctx: s.ctx}
}

// WithContext возвращает Logger, передающий ctx в handler.
func (s *SlogAdapter) WithContext(ctx context.Context) Logger {
	return &SlogAdapter{logger: s.logger, ctx: ctx}
}
