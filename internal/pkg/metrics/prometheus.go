package metrics

import (
	"context"
	"fmt"
	"os"

	"github.com/Kargones/cblogger/internal/pkg/cblog"
	"github.com/Kargones/cblogger/internal/pkg/logging"
	"github.com/Kargones/cblogger/internal/pkg/urlutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Namespace - префикс имён метрик.
const Namespace = "cblogger"

// PrometheusCollector считает события логгера в собственном registry
// и отправляет их в Pushgateway при вызове Push.
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry
	instance string

	records      *prometheus.CounterVec
	alerts       *prometheus.CounterVec
	crashReports prometheus.Counter
}

// NewPrometheusCollector создаёт PrometheusCollector и регистрирует метрики:
//   - cblogger_records_total{level}
//   - cblogger_alerts_total{outcome}
//   - cblogger_crash_reports_total
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для metrics instance label, используется 'unknown'",
				"error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	records := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "records_total",
			Help:      "Total number of log records written, by level",
		},
		[]string{"level"},
	)
	alerts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "alerts_total",
			Help:      "Total number of alert attempts, by outcome",
		},
		[]string{"outcome"},
	)
	crashReports := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "crash_reports_total",
			Help:      "Total number of errors handed to the crash reporter",
		},
	)

	registry := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{records, alerts, crashReports} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	// Все значения label известны заранее: серии видны в Pushgateway с нулём.
	for _, lvl := range []cblog.Level{cblog.LevelDebug, cblog.LevelInfo, cblog.LevelWarn, cblog.LevelError} {
		records.WithLabelValues(lvl.String())
	}
	for _, o := range []cblog.AlertOutcome{cblog.AlertSent, cblog.AlertFailed, cblog.AlertPanicked, cblog.AlertUnavailable} {
		alerts.WithLabelValues(o.String())
	}

	return &PrometheusCollector{
		config:       config,
		logger:       logger,
		registry:     registry,
		instance:     instance,
		records:      records,
		alerts:       alerts,
		crashReports: crashReports,
	}, nil
}

// ObserveRecord реализует cblog.Observer.
func (c *PrometheusCollector) ObserveRecord(level cblog.Level) {
	c.records.WithLabelValues(level.String()).Inc()
}

// ObserveAlert реализует cblog.Observer.
func (c *PrometheusCollector) ObserveAlert(outcome cblog.AlertOutcome) {
	c.alerts.WithLabelValues(outcome.String()).Inc()
}

// ObserveCrashReport реализует cblog.Observer.
func (c *PrometheusCollector) ObserveCrashReport() {
	c.crashReports.Inc()
}

// Push отправляет метрики в Pushgateway.
// Ошибка отправки логируется, результат всегда nil.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	select {
	case <-ctx.Done():
		c.logger.Debug("metrics push отменён")
		return nil
	default:
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Info("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// Registry возвращает registry коллектора.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}
