package alerting

import (
	"context"
	"time"

	"github.com/Kargones/cblogger/internal/pkg/cblog"
)

// Bridge подключает Alerter к логгеру: реализует cblog.Alerter.
// Ошибка Send возвращается логгеру и попадает в запись alert_error_response.
type Bridge struct {
	alerter Alerter
	now     func() time.Time
}

// NewBridge создаёт Bridge поверх alerter. nil заменяется на NopAlerter.
func NewBridge(alerter Alerter) *Bridge {
	if alerter == nil {
		alerter = NewNopAlerter()
	}
	return &Bridge{
		alerter: alerter,
		now:     time.Now,
	}
}

// Alert преобразует запрос логгера в Alert и отправляет его.
func (b *Bridge) Alert(ctx context.Context, req cblog.AlertRequest) error {
	return b.alerter.Send(ctx, AlertFromRequest(req, b.now()))
}

// AlertFromRequest строит Alert из запроса логгера.
func AlertFromRequest(req cblog.AlertRequest, ts time.Time) Alert {
	alert := Alert{
		Key:       req.Key,
		Level:     req.Level.String(),
		Severity:  SeverityFromLevel(req.Level),
		Scope:     req.Options.Scope,
		Data:      req.Data,
		Extra:     req.Options.Extra,
		Timestamp: ts,
	}
	if err := req.Err.AsError(); err != nil {
		alert.Message = err.Error()
	}
	if m, ok := req.Data.(map[string]any); ok {
		if id, ok := m[cblog.RequestIDField].(string); ok {
			alert.RequestID = id
		}
	}
	return alert
}
