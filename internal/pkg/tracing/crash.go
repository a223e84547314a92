package tracing

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/Kargones/cblogger/internal/pkg/cblog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CrashSpanName - имя span-а, который создаётся, если в context нет активного.
const CrashSpanName = "cblog.crash"

// Атрибуты span-а с ошибкой.
const (
	attrKey     = attribute.Key("cblog.key")
	attrContext = attribute.Key("cblog.context")
)

// maxContextAttrLen ограничивает длину атрибута с данными записи.
const maxContextAttrLen = 2048

// SpanCrashReporter записывает ошибки ERROR-записей в OpenTelemetry.
// Ошибка добавляется к активному span из context; если его нет,
// создаётся и сразу закрывается отдельный span CrashSpanName.
type SpanCrashReporter struct {
	tracer trace.Tracer
}

// NewSpanCrashReporter создаёт reporter. Nil tracer означает глобальный
// TracerProvider с именем TracerName.
func NewSpanCrashReporter(tracer trace.Tracer) *SpanCrashReporter {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	return &SpanCrashReporter{tracer: tracer}
}

// Notify реализует cblog.CrashReporter.
func (r *SpanCrashReporter) Notify(ctx context.Context, err error, c cblog.CrashContext) {
	if err == nil {
		return
	}

	attrs := []attribute.KeyValue{attrKey.String(c.Name)}
	if c.Context != nil {
		attrs = append(attrs, attrContext.String(truncate(fmt.Sprintf("%+v", c.Context), maxContextAttrLen)))
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		_, span = r.tracer.Start(ctx, CrashSpanName)
		defer span.End()
	}

	span.RecordError(err, trace.WithAttributes(attrs...))
	span.SetStatus(codes.Error, err.Error())
}

// truncate обрезает s до limit байт по границе руны.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
