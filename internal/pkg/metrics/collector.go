// Package metrics считает записи, алерты и отчёты об ошибках логгера
// и отправляет счётчики в Prometheus Pushgateway.
//
// NewCollector выбирает реализацию по конфигурации: PrometheusCollector
// при включённых метриках, NopCollector иначе.
package metrics

import (
	"context"

	"github.com/Kargones/cblogger/internal/pkg/cblog"
)

// Collector наблюдает за логгером и отправляет накопленные метрики.
type Collector interface {
	cblog.Observer

	// Push отправляет метрики в Pushgateway.
	// Ошибки отправки логируются внутри реализации, результат всегда nil.
	Push(ctx context.Context) error
}
