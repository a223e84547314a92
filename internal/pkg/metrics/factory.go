package metrics

import (
	"github.com/Kargones/cblogger/internal/pkg/logging"
)

// NewCollector создаёт Collector по конфигурации.
// При выключенных метриках возвращает NopCollector.
func NewCollector(config Config, logger logging.Logger) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	return NewPrometheusCollector(config, logger)
}
