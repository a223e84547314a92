package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Kargones/cblogger/internal/config"
	"github.com/Kargones/cblogger/internal/constants"
	"github.com/Kargones/cblogger/internal/pkg/alerting"
	"github.com/Kargones/cblogger/internal/pkg/cblog"
	"github.com/Kargones/cblogger/internal/pkg/logging"
	"github.com/Kargones/cblogger/internal/pkg/metrics"
	"github.com/Kargones/cblogger/internal/pkg/tracing"
)

// ProvideLogger создаёт журнал адаптеров на основе Config.Logging.
// В каждую запись добавляется request_id из trace ID контекста.
// Nil Config означает значения по умолчанию.
func ProvideLogger(cfg *config.Config) logging.Logger {
	logCfg := logging.DefaultConfig()
	if cfg != nil {
		logCfg = cfg.Logging.ToLogging()
	}
	return logging.NewLogger(logCfg, logging.WithRequestID(tracing.NewRequestIDSource().CurrentID))
}

// ProvideAlerter создаёт Alerter на основе Config.Alerting.
// При ошибке создания возвращает NopAlerter и логирует ошибку.
func ProvideAlerter(cfg *config.Config, logger logging.Logger) alerting.Alerter {
	if cfg == nil {
		return alerting.NewNopAlerter()
	}

	alerter, err := alerting.NewAlerter(cfg.Alerting.ToAlerting(), cfg.Alerting.Rules, logger)
	if err != nil {
		logger.Error("ошибка создания Alerter, используется NopAlerter",
			slog.String("error", err.Error()),
		)
		return alerting.NewNopAlerter()
	}
	return alerter
}

// ProvideMetricsCollector создаёт Collector на основе Config.Metrics.
// При ошибке создания возвращает NopCollector и логирует ошибку.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil {
		return metrics.NewNopCollector()
	}

	collector, err := metrics.NewCollector(cfg.Metrics.ToMetrics(), logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			slog.String("error", err.Error()),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracerProvider инициализирует OTel TracerProvider и возвращает shutdown function.
// Выключенный трейсинг или ошибка инициализации дают nop shutdown.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) func(context.Context) error {
	if cfg == nil {
		return tracing.NewNopTracerProvider()
	}

	tracingCfg := cfg.Tracing.ToTracing()
	if tracingCfg.Version == "" {
		tracingCfg.Version = constants.Version
	}

	shutdown, err := tracing.NewTracerProvider(tracingCfg, logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		return tracing.NewNopTracerProvider()
	}
	return shutdown
}

// ProvideCrashReporter создаёт reporter, записывающий ошибки в span-ы глобального TracerProvider.
func ProvideCrashReporter() cblog.CrashReporter {
	return tracing.NewSpanCrashReporter(nil)
}

// ProvideCBLog создаёт консольный логгер, подключает к нему расширения
// и устанавливает его как cblog.Default().
//
// Алертер подключается, только если алертинг включён: иначе запрос алерта
// даёт запись logger_cannot_alert.
func ProvideCBLog(
	cfg *config.Config,
	alerter alerting.Alerter,
	collector metrics.Collector,
	reporter cblog.CrashReporter,
) (*cblog.Logger, error) {
	l := cblog.New(
		cblog.WithRequestIDSource(tracing.NewRequestIDSource()),
		cblog.WithObserver(collector),
	)

	if cfg != nil && cfg.Alerting.Enabled && !isNopAlerter(alerter) {
		if err := l.Extend(alerting.NewBridge(alerter)); err != nil {
			return nil, fmt.Errorf("подключение алертера: %w", err)
		}
	}
	if err := l.AttachCrashReporter(reporter); err != nil {
		return nil, fmt.Errorf("подключение crash reporter: %w", err)
	}

	cblog.SetDefault(l)
	return l, nil
}

func isNopAlerter(a alerting.Alerter) bool {
	_, ok := a.(*alerting.NopAlerter)
	return a == nil || ok
}
