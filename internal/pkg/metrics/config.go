package metrics

import (
	"net/url"
	"time"
)

// DefaultJobName - имя job в Pushgateway по умолчанию.
const DefaultJobName = "cblogger"

// Config содержит настройки Prometheus метрик.
type Config struct {
	Enabled bool

	// PushgatewayURL - URL Prometheus Pushgateway, например "http://pushgateway:9091".
	PushgatewayURL string

	// JobName - имя job для группировки метрик.
	JobName string

	// Timeout - таймаут запроса к Pushgateway.
	Timeout time.Duration

	// InstanceLabel - значение label instance. Пустое значение означает hostname.
	InstanceLabel string
}

// Validate проверяет конфигурацию. Выключенные метрики валидны всегда.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.PushgatewayURL == "" {
		return ErrPushgatewayURLRequired
	}
	u, err := url.Parse(c.PushgatewayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrPushgatewayURLInvalid
	}
	if c.JobName == "" {
		return ErrJobNameRequired
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// DefaultConfig возвращает конфигурацию по умолчанию (метрики выключены).
func DefaultConfig() Config {
	return Config{
		JobName: DefaultJobName,
		Timeout: 10 * time.Second,
	}
}
