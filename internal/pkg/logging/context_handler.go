package logging

import (
	"context"
	"log/slog"
)

// RequestIDKey - имя атрибута с идентификатором запроса.
const RequestIDKey = "request_id"

// RequestIDFunc извлекает идентификатор запроса из context.
type RequestIDFunc func(ctx context.Context) (string, bool)

// HandlerOption оборачивает slog.Handler, создаваемый фабрикой.
type HandlerOption func(slog.Handler) slog.Handler

// WithRequestID добавляет в записи атрибут request_id из context.
func WithRequestID(ids RequestIDFunc) HandlerOption {
	return func(h slog.Handler) slog.Handler {
		return NewContextHandler(h, ids)
	}
}

// ContextHandler добавляет request_id из context в каждую запись.
type ContextHandler struct {
	slog.Handler
	ids RequestIDFunc
}

// NewContextHandler оборачивает h. Nil ids отключает добавление атрибута.
func NewContextHandler(h slog.Handler, ids RequestIDFunc) *ContextHandler {
	return &ContextHandler{Handler: h, ids: ids}
}

// Handle реализует slog.Handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.ids != nil && ctx != nil {
		if id, ok := h.ids(ctx); ok && id != "" {
			r.AddAttrs(slog.String(RequestIDKey, id))
		}
	}
	return h.Handler.Handle(ctx, r)
}

// WithAttrs реализует slog.Handler.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs), ids: h.ids}
}

// WithGroup реализует slog.Handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name), ids: h.ids}
}
