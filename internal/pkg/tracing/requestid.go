package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// RequestIDSource отдаёт логгеру идентификатор текущего запроса.
// Сначала используется trace ID, установленный через WithTraceID,
// затем trace ID span context из ctx.
type RequestIDSource struct{}

// NewRequestIDSource создаёт RequestIDSource.
func NewRequestIDSource() RequestIDSource {
	return RequestIDSource{}
}

// CurrentID возвращает идентификатор запроса и true, если он известен.
func (RequestIDSource) CurrentID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if id := TraceIDFromContext(ctx); id != "" {
		return id, true
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String(), true
	}
	return "", false
}
