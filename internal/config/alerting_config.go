package config

import (
	"time"

	"github.com/Kargones/cblogger/internal/pkg/alerting"
)

// AlertingConfig - каналы доставки алертов и правила фильтрации.
type AlertingConfig struct {
	Enabled bool `yaml:"enabled" env:"CBL_ALERTING_ENABLED"`

	// RateLimitWindow - минимальный интервал между алертами с одним ключом.
	RateLimitWindow time.Duration `yaml:"rateLimitWindow" env:"CBL_ALERTING_RATE_LIMIT_WINDOW" env-default:"5m"`

	Telegram TelegramChannelConfig `yaml:"telegram"`
	Webhook  WebhookChannelConfig  `yaml:"webhook"`
	Rules    alerting.RulesConfig  `yaml:"rules"`
}

// TelegramChannelConfig - настройки telegram канала.
type TelegramChannelConfig struct {
	Enabled  bool   `yaml:"enabled" env:"CBL_ALERTING_TELEGRAM_ENABLED"`
	BotToken string `yaml:"botToken" env:"CBL_ALERTING_TELEGRAM_BOT_TOKEN"`

	// ChatIDs - числовые ID или @username.
	ChatIDs []string      `yaml:"chatIds" env:"CBL_ALERTING_TELEGRAM_CHAT_IDS" env-separator:","`
	Timeout time.Duration `yaml:"timeout" env:"CBL_ALERTING_TELEGRAM_TIMEOUT" env-default:"10s"`
}

// WebhookChannelConfig - настройки webhook канала.
type WebhookChannelConfig struct {
	Enabled bool     `yaml:"enabled" env:"CBL_ALERTING_WEBHOOK_ENABLED"`
	URLs    []string `yaml:"urls" env:"CBL_ALERTING_WEBHOOK_URLS" env-separator:","`

	// Headers задаются только в YAML: cleanenv не читает map из env.
	Headers map[string]string `yaml:"headers"`

	Timeout    time.Duration `yaml:"timeout" env:"CBL_ALERTING_WEBHOOK_TIMEOUT" env-default:"10s"`
	// MaxRetries без env-default: 0 отключает повторы.
	MaxRetries int           `yaml:"maxRetries" env:"CBL_ALERTING_WEBHOOK_MAX_RETRIES"`

	// Source - поле source в payload.
	Source string `yaml:"source" env:"CBL_ALERTING_WEBHOOK_SOURCE" env-default:"cblogger"`
}

func defaultAlertingConfig() AlertingConfig {
	return AlertingConfig{
		RateLimitWindow: alerting.DefaultRateLimitWindow,
		Telegram:        TelegramChannelConfig{Timeout: alerting.DefaultTelegramTimeout},
		Webhook: WebhookChannelConfig{
			Timeout:    alerting.DefaultWebhookTimeout,
			MaxRetries: alerting.DefaultMaxRetries,
			Source:     alerting.DefaultWebhookSource,
		},
		Rules: alerting.RulesConfig{MinSeverity: "INFO"},
	}
}

// ToAlerting возвращает конфигурацию пакета alerting.
func (c *AlertingConfig) ToAlerting() alerting.Config {
	return alerting.Config{
		Enabled:         c.Enabled,
		RateLimitWindow: c.RateLimitWindow,
		Telegram: alerting.TelegramConfig{
			Enabled:  c.Telegram.Enabled,
			BotToken: c.Telegram.BotToken,
			ChatIDs:  c.Telegram.ChatIDs,
			Timeout:  c.Telegram.Timeout,
		},
		Webhook: alerting.WebhookConfig{
			Enabled:    c.Webhook.Enabled,
			URLs:       c.Webhook.URLs,
			Headers:    c.Webhook.Headers,
			Timeout:    c.Webhook.Timeout,
			MaxRetries: c.Webhook.MaxRetries,
			Source:     c.Webhook.Source,
		},
	}
}

// Validate проверяет включённые каналы.
func (c *AlertingConfig) Validate() error {
	ac := c.ToAlerting()
	return ac.Validate()
}
