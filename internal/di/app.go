package di

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Kargones/cblogger/internal/config"
	"github.com/Kargones/cblogger/internal/constants"
	"github.com/Kargones/cblogger/internal/pkg/alerting"
	"github.com/Kargones/cblogger/internal/pkg/cblog"
	"github.com/Kargones/cblogger/internal/pkg/logging"
	"github.com/Kargones/cblogger/internal/pkg/metrics"
	"github.com/Kargones/cblogger/internal/pkg/tracing"

	"go.opentelemetry.io/otel"
)

// EmitSpanName - span, внутри которого App.Emit пишет запись.
const EmitSpanName = "cblogger.emit"

// App содержит инициализированные зависимости приложения.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config содержит конфигурацию приложения.
	Config *config.Config

	// Logger - журнал адаптеров (slog). Записи cblog через него не проходят.
	Logger logging.Logger

	// Alerter отправляет алерты. NopAlerter, если алертинг отключён.
	Alerter alerting.Alerter

	// MetricsCollector считает записи и алерты, отправляет их в Pushgateway.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает OTel TracerProvider.
	TracerShutdown func(context.Context) error

	// CrashReporter получает ошибки ERROR-записей.
	CrashReporter cblog.CrashReporter

	// CBLog - консольный логгер с подключёнными расширениями.
	// Он же установлен как cblog.Default().
	CBLog *cblog.Logger
}

// Emit выводит одну запись. Если в записи есть TraceID, он становится
// идентификатором запроса. Без него при tracing.generateRequestId
// генерируется новый, иначе используется trace ID span-а EmitSpanName.
func (a *App) Emit(ctx context.Context, rec config.Record) {
	if rec.TraceID == "" && a.Config != nil && a.Config.Tracing.GenerateRequestID {
		rec.TraceID = tracing.GenerateTraceID()
	}
	if rec.TraceID != "" {
		ctx = tracing.WithTraceID(ctx, rec.TraceID)
		ctx = tracing.ContextWithOTelTraceID(ctx, rec.TraceID)
	}

	ctx, span := otel.Tracer(tracing.TracerName).Start(ctx, EmitSpanName)
	defer span.End()

	a.Logger.Debug("вывод записи",
		slog.String("key", rec.Key),
		slog.String("level", rec.Level.String()),
		slog.Bool("alert", rec.Options.Alert),
	)
	a.CBLog.Log(ctx, rec.Level, rec.Key, rec.Args()...)
}

// Shutdown отправляет метрики и завершает трейсинг.
// Ошибки логируются и возвращаются объединёнными.
func (a *App) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.ShutdownTimeoutSeconds*time.Second)
	defer cancel()

	var errs []error
	if err := a.MetricsCollector.Push(ctx); err != nil {
		a.Logger.Error("ошибка отправки метрик", slog.String("error", err.Error()))
		errs = append(errs, err)
	}
	if err := a.TracerShutdown(ctx); err != nil {
		a.Logger.Error("ошибка завершения tracing", slog.String("error", err.Error()))
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
