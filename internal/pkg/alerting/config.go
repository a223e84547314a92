package alerting

import "time"

// DefaultRateLimitWindow - интервал между алертами с одним ключом по умолчанию.
const DefaultRateLimitWindow = 5 * time.Minute

// Config содержит настройки для пакета alerting.
// Используется при создании Alerter через NewAlerter().
type Config struct {
	// Enabled - включён ли алертинг (по умолчанию false).
	Enabled bool

	// RateLimitWindow - минимальный интервал между алертами с одним ключом.
	// По умолчанию: 5 минут.
	RateLimitWindow time.Duration

	// Telegram - конфигурация telegram канала.
	Telegram TelegramConfig

	// Webhook - конфигурация webhook канала.
	Webhook WebhookConfig
}

// DefaultConfig возвращает конфигурацию со значениями по умолчанию.
// Alerting отключён по умолчанию.
func DefaultConfig() Config {
	return Config{
		Enabled:         false,
		RateLimitWindow: DefaultRateLimitWindow,
		Telegram: TelegramConfig{
			Enabled: false,
			Timeout: DefaultTelegramTimeout,
		},
		Webhook: WebhookConfig{
			Enabled:    false,
			Timeout:    DefaultWebhookTimeout,
			MaxRetries: DefaultMaxRetries,
		},
	}
}

// Validate проверяет корректность конфигурации.
// Возвращает ошибку если обязательные поля включённых каналов не заполнены.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if err := c.Telegram.Validate(); err != nil {
		return err
	}
	return c.Webhook.Validate()
}
