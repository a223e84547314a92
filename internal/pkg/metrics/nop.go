package metrics

import (
	"context"

	"github.com/Kargones/cblogger/internal/pkg/cblog"
)

// NopCollector ничего не считает и ничего не отправляет.
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

func (c *NopCollector) ObserveRecord(cblog.Level)        {}
func (c *NopCollector) ObserveAlert(cblog.AlertOutcome) {}
func (c *NopCollector) ObserveCrashReport()             {}

// Push всегда возвращает nil.
func (c *NopCollector) Push(context.Context) error {
	return nil
}
