package alerting

import (
	"net/url"
	"time"
)

// Значения по умолчанию для Webhook конфигурации.
const (
	// DefaultWebhookTimeout - таймаут HTTP запросов по умолчанию.
	DefaultWebhookTimeout = 10 * time.Second

	// DefaultMaxRetries - количество повторных попыток по умолчанию.
	DefaultMaxRetries = 3
)

// WebhookConfig содержит настройки webhook канала для alerting пакета.
type WebhookConfig struct {
	// Enabled - включён ли webhook канал.
	Enabled bool

	// URLs - список URL для отправки webhook со стандартным payload.
	URLs []string

	// Headers - дополнительные HTTP заголовки.
	Headers map[string]string

	// Timeout - таймаут HTTP запросов.
	Timeout time.Duration

	// MaxRetries - максимальное количество повторных попыток.
	MaxRetries int

	// Source - значение поля source в payload. По умолчанию "cblogger".
	Source string
}

// Validate проверяет корректность WebhookConfig.
func (w *WebhookConfig) Validate() error {
	if !w.Enabled {
		return nil
	}
	if len(w.URLs) == 0 {
		return ErrWebhookURLRequired
	}
	for _, rawURL := range w.URLs {
		if err := validateWebhookURL(rawURL); err != nil {
			return err
		}
	}
	// Защита от HTTP Header Injection (RFC 7230).
	for key, value := range w.Headers {
		if containsInvalidHTTPHeaderChars(key) || containsInvalidHTTPHeaderChars(value) {
			return ErrWebhookHeaderInvalid
		}
	}
	return nil
}

// validateWebhookURL допускает только http и https с непустым host.
func validateWebhookURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ErrWebhookURLInvalid
	}
	if u.Scheme == "" || u.Host == "" {
		return ErrWebhookURLInvalid
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrWebhookURLInvalid
	}
	return nil
}

// containsInvalidHTTPHeaderChars проверяет наличие запрещённых символов в HTTP заголовке.
// По RFC 7230 разрешены HTAB (0x09) и все printable ASCII.
func containsInvalidHTTPHeaderChars(s string) bool {
	for _, r := range s {
		if r == 0x09 {
			continue
		}
		if r <= 0x1f || r == 0x7f {
			return true
		}
	}
	return false
}
