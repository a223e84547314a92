package config

import (
	"time"

	"github.com/Kargones/cblogger/internal/pkg/metrics"
)

// MetricsConfig - счётчики логгера в Prometheus Pushgateway.
type MetricsConfig struct {
	Enabled        bool          `yaml:"enabled" env:"CBL_METRICS_ENABLED"`
	PushgatewayURL string        `yaml:"pushgatewayUrl" env:"CBL_METRICS_PUSHGATEWAY_URL"`
	JobName        string        `yaml:"jobName" env:"CBL_METRICS_JOB_NAME" env-default:"cblogger"`
	Timeout        time.Duration `yaml:"timeout" env:"CBL_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel - пустое значение означает hostname.
	InstanceLabel string `yaml:"instanceLabel" env:"CBL_METRICS_INSTANCE"`
}

func defaultMetricsConfig() MetricsConfig {
	d := metrics.DefaultConfig()
	return MetricsConfig{
		JobName: d.JobName,
		Timeout: d.Timeout,
	}
}

// ToMetrics возвращает конфигурацию пакета metrics.
func (c *MetricsConfig) ToMetrics() metrics.Config {
	return metrics.Config{
		Enabled:        c.Enabled,
		PushgatewayURL: c.PushgatewayURL,
		JobName:        c.JobName,
		Timeout:        c.Timeout,
		InstanceLabel:  c.InstanceLabel,
	}
}

// Validate проверяет секцию через metrics.Config.
func (c *MetricsConfig) Validate() error {
	mc := c.ToMetrics()
	return mc.Validate()
}
