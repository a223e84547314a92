// Package alerting предоставляет интерфейс и реализации для отправки алертов из логгера.
// Поддерживает telegram и webhook каналы с rate limiting и per-channel правилами фильтрации.
// Bridge подключает любой Alerter к cblog.Logger.
package alerting

import (
	"context"
	"time"

	"github.com/Kargones/cblogger/internal/pkg/cblog"
)

// Severity определяет уровень критичности алерта.
type Severity int

const (
	// SeverityInfo - информационный алерт.
	SeverityInfo Severity = iota
	// SeverityWarning - предупреждающий алерт.
	SeverityWarning
	// SeverityCritical - критический алерт.
	SeverityCritical
)

// Имена каналов алертинга.
const (
	// ChannelTelegram - имя telegram канала.
	ChannelTelegram = "telegram"
	// ChannelWebhook - имя webhook канала.
	ChannelWebhook = "webhook"
)

// String возвращает строковое представление Severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// SeverityFromLevel сопоставляет уровень записи с критичностью алерта.
// DEBUG и INFO - INFO, WARN - WARNING, ERROR - CRITICAL.
func SeverityFromLevel(level cblog.Level) Severity {
	switch {
	case level >= cblog.LevelError:
		return SeverityCritical
	case level == cblog.LevelWarn:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// Alert представляет данные для отправки алерта.
type Alert struct {
	// Key - ключ записи лога. Используется для rate limiting и правил.
	Key string

	// Level - уровень записи ("DEBUG", "INFO", "WARN", "ERROR").
	Level string

	// Severity - уровень критичности алерта.
	Severity Severity

	// Scope - область алерта из опций записи.
	Scope string

	// Message - текст ошибки записи, если она была.
	Message string

	// Data - данные записи как есть.
	Data any

	// Extra - дополнительные опции записи.
	Extra map[string]any

	// RequestID - идентификатор запроса для корреляции логов.
	RequestID string

	// Timestamp - время формирования алерта.
	Timestamp time.Time
}

// Alerter определяет интерфейс для отправки алертов.
// Реализации: TelegramAlerter, WebhookAlerter, MultiChannelAlerter, NopAlerter.
//
// Send возвращает ошибку, только если алерт не доставлен ни одному получателю.
// Подавление rate limiter, отклонение правилами и отмена контекста ошибкой не считаются.
// Частичная доставка логируется как warning.
type Alerter interface {
	// Send отправляет алерт через настроенные каналы.
	//
	// Пример:
	//   alerter.Send(ctx, Alert{Key: "db_conn_fail", Severity: SeverityCritical})
	Send(ctx context.Context, alert Alert) error
}
