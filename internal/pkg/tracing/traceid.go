// Package tracing связывает логгер с идентификатором запроса и OpenTelemetry.
//
// Trace ID - 32-символьная hex строка (16 байт), совместимая с W3C Trace Context:
//
//	"a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"
//
// RequestIDSource отдаёт логгеру trace ID из context (или из активного OTel span),
// SpanCrashReporter записывает ошибки ERROR-записей в span.
package tracing

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var fallbackCounter atomic.Uint64

// GenerateTraceID генерирует случайный trace ID через crypto/rand.
// При отказе crypto/rand возвращает ID из timestamp и счётчика.
func GenerateTraceID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fallbackTraceID()
	}
	return hex.EncodeToString(b)
}

// fallbackTraceID: %016x от uint64 даёт ровно 16 символов, итого 32.
func fallbackTraceID() string {
	counter := fallbackCounter.Add(1)
	timestamp := uint64(time.Now().UnixNano())
	return fmt.Sprintf("%016x%016x", timestamp, counter)
}
