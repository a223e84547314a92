package config

import (
	"time"

	"github.com/Kargones/cblogger/internal/pkg/tracing"
)

// TracingConfig - OpenTelemetry трейсинг.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled" env:"CBL_TRACING_ENABLED"`
	Endpoint    string `yaml:"endpoint" env:"CBL_TRACING_ENDPOINT"`
	ServiceName string `yaml:"serviceName" env:"CBL_TRACING_SERVICE_NAME" env-default:"cblogger"`
	Version     string `yaml:"version" env:"CBL_TRACING_VERSION"`
	Environment string `yaml:"environment" env:"CBL_TRACING_ENVIRONMENT" env-default:"production"`
	Insecure    bool   `yaml:"insecure" env:"CBL_TRACING_INSECURE"`

	// GenerateRequestID - генерировать trace ID для записи без CBL_TRACE_ID.
	GenerateRequestID bool `yaml:"generateRequestId" env:"CBL_TRACING_GENERATE_REQUEST_ID"`

	Timeout time.Duration `yaml:"timeout" env:"CBL_TRACING_TIMEOUT" env-default:"5s"`

	// SamplingRate без env-default: 0 отключает сэмплирование.
	SamplingRate float64 `yaml:"samplingRate" env:"CBL_TRACING_SAMPLING_RATE"`
}

func defaultTracingConfig() TracingConfig {
	d := tracing.DefaultConfig()
	return TracingConfig{
		ServiceName:  d.ServiceName,
		Environment:  d.Environment,
		Timeout:      d.Timeout,
		SamplingRate: d.SamplingRate,
	}
}

// ToTracing возвращает конфигурацию пакета tracing.
func (c *TracingConfig) ToTracing() tracing.Config {
	return tracing.Config{
		Enabled:      c.Enabled,
		Endpoint:     c.Endpoint,
		ServiceName:  c.ServiceName,
		Version:      c.Version,
		Environment:  c.Environment,
		Insecure:     c.Insecure,
		Timeout:      c.Timeout,
		SamplingRate: c.SamplingRate,
	}
}

// Validate проверяет секцию через tracing.Config.
func (c *TracingConfig) Validate() error {
	tc := c.ToTracing()
	return tc.Validate()
}
