package cblog

import "context"

// AlertRequest - всё, что известно о записи, запросившей алерт.
type AlertRequest struct {
	Level   Level
	Key     string
	Data    any
	Options Options
	Err     ErrValue
}

// Alerter - расширение, отправляющее алерты.
// Возвращённая ошибка логируется как alert_error_response, паника как alert_error_thrown.
type Alerter interface {
	Alert(ctx context.Context, req AlertRequest) error
}

// CrashContext передаётся CrashReporter вместе с ошибкой.
type CrashContext struct {
	// Name - ключ записи.
	Name string
	// Context - данные записи.
	Context any
}

// CrashReporter получает каждую ERROR-запись с ошибкой.
// Результат и паники игнорируются.
//
// Notify вызывается синхронно, до отправки алерта: вызов логгера ждёт его
// завершения. Реализации не должны блокироваться; медленную доставку
// следует переносить в собственную горутину или ограничивать через ctx.
type CrashReporter interface {
	Notify(ctx context.Context, err error, c CrashContext)
}

// RequestIDSource возвращает идентификатор текущего запроса, если он есть.
type RequestIDSource interface {
	CurrentID(ctx context.Context) (string, bool)
}

// AlertOutcome - результат попытки алертинга.
type AlertOutcome int

// Возможные результаты алертинга.
const (
	AlertSent AlertOutcome = iota
	AlertFailed
	AlertPanicked
	AlertUnavailable
)

// String возвращает метку результата для метрик.
func (o AlertOutcome) String() string {
	switch o {
	case AlertSent:
		return "sent"
	case AlertFailed:
		return "failed"
	case AlertPanicked:
		return "panicked"
	case AlertUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Observer получает события логгера. Вызывается синхронно, должен быть быстрым.
type Observer interface {
	ObserveRecord(level Level)
	ObserveAlert(outcome AlertOutcome)
	ObserveCrashReport()
}

// ExtensionKind - вид расширения для Attach.
type ExtensionKind string

// Поддерживаемые виды расширений.
const (
	KindAlerter       ExtensionKind = "alerter"
	KindCrashReporter ExtensionKind = "crash-reporter"
)
