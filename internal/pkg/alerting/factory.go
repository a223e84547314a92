package alerting

import (
	"fmt"

	"github.com/Kargones/cblogger/internal/pkg/logging"
)

// NewAlerter создаёт Alerter на основе конфигурации и правил фильтрации.
// Если alerting отключён (enabled=false) или нет настроенных каналов - возвращает NopAlerter.
// Иначе возвращает MultiChannelAlerter с именованными каналами и RulesEngine.
//
// Пример использования:
//
//	config := alerting.Config{
//	    Enabled: true,
//	    Webhook: alerting.WebhookConfig{
//	        Enabled: true,
//	        URLs:    []string{"https://hooks.example.com/alerts"},
//	    },
//	}
//	alerter, err := alerting.NewAlerter(config, alerting.RulesConfig{MinSeverity: "WARNING"}, logger)
//	_ = cblog.Extend(alerting.NewBridge(alerter))
func NewAlerter(config Config, rules RulesConfig, logger logging.Logger) (Alerter, error) {
	if !config.Enabled {
		return NewNopAlerter(), nil
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	rateLimitWindow := config.RateLimitWindow
	if rateLimitWindow == 0 {
		rateLimitWindow = DefaultRateLimitWindow
	}
	rateLimiter := NewRateLimiter(rateLimitWindow)

	// Каналы создаются без собственного rate limiter: он общий на уровне MultiChannelAlerter,
	// чтобы алерт получали все каналы или ни один.
	namedChannels := make(map[string]Alerter)

	if config.Telegram.Enabled {
		telegramAlerter, err := NewTelegramAlerter(config.Telegram, nil, logger)
		if err != nil {
			return nil, fmt.Errorf("создание telegram alerter: %w", err)
		}
		namedChannels[ChannelTelegram] = telegramAlerter
	}

	if config.Webhook.Enabled {
		webhookAlerter, err := NewWebhookAlerter(config.Webhook, nil, logger)
		if err != nil {
			return nil, fmt.Errorf("создание webhook alerter: %w", err)
		}
		namedChannels[ChannelWebhook] = webhookAlerter
	}

	if len(namedChannels) == 0 {
		logger.Warn("alerting включён, но нет настроенных каналов - используется NopAlerter")
		return NewNopAlerter(), nil
	}

	// Правило канала полностью заменяет глобальное, minSeverity не наследуется.
	if rules.MinSeverity != "" {
		for name, ch := range rules.Channels {
			if ch.MinSeverity == "" {
				logger.Warn("правило канала без minSeverity - будет использован INFO, а не глобальный",
					"channel", name,
					"global_min_severity", rules.MinSeverity,
				)
			}
		}
	}

	return NewMultiChannelAlerter(namedChannels, NewRulesEngine(rules), rateLimiter, logger), nil
}
