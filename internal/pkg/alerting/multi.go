package alerting

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Kargones/cblogger/internal/pkg/logging"
)

// MultiChannelAlerter отправляет алерты через несколько каналов с фильтрацией по правилам.
type MultiChannelAlerter struct {
	channels     map[string]Alerter
	channelNames []string // отсортированные имена каналов для детерминистичного порядка
	rules        *RulesEngine
	rateLimiter  *RateLimiter // общий для всех каналов
	logger       logging.Logger
}

// NewMultiChannelAlerter создаёт alerter с несколькими каналами и правилами фильтрации.
// rateLimiter применяется ОДИН РАЗ перед отправкой во все каналы.
func NewMultiChannelAlerter(channels map[string]Alerter, rules *RulesEngine, rateLimiter *RateLimiter, logger logging.Logger) *MultiChannelAlerter {
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	return &MultiChannelAlerter{
		channels:     channels,
		channelNames: names,
		rules:        rules,
		rateLimiter:  rateLimiter,
		logger:       logger,
	}
}

// Send отправляет алерт через все настроенные каналы, проверяя правила.
// Rate limiting проверяется один раз по Key: подавленный алерт не уходит ни в один канал.
// Каналы обрабатываются в алфавитном порядке.
// Возвращает ошибку, если все каналы, в которые алерт был отправлен, вернули ошибку.
func (m *MultiChannelAlerter) Send(ctx context.Context, alert Alert) error {
	if m.rateLimiter != nil && !m.rateLimiter.Allow(alert.Key) {
		m.logger.Debug("алерт подавлен rate limiter",
			"key", alert.Key,
		)
		return nil
	}

	var (
		sentCount    int
		skippedCount int
		failures     []error
	)
	for _, name := range m.channelNames {
		select {
		case <-ctx.Done():
			return nil // Отмена - не ошибка
		default:
		}

		if m.rules != nil && !m.rules.Evaluate(alert, name) {
			m.logger.Debug("алерт отклонён правилами",
				"channel", name,
				"key", alert.Key,
				"scope", alert.Scope,
				"severity", alert.Severity.String(),
			)
			skippedCount++
			continue
		}

		if err := m.channels[name].Send(ctx, alert); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", name, err))
			continue
		}
		sentCount++
	}

	m.logger.Debug("multi-channel рассылка завершена",
		"key", alert.Key,
		"channels_sent", sentCount,
		"channels_failed", len(failures),
		"channels_skipped", skippedCount,
		"channels_total", len(m.channelNames),
	)

	if sentCount == 0 && len(failures) > 0 {
		return errors.Join(failures...)
	}
	if len(failures) > 0 {
		m.logger.Warn("алерт доставлен не во все каналы",
			"key", alert.Key,
			"error", errors.Join(failures...).Error(),
		)
	}
	return nil
}
