package cblog

import "github.com/Kargones/cblogger/internal/pkg/apperrors"

// Ошибки API расширения. Сравниваются через errors.Is по коду.
var (
	// ErrAlreadyExtended - слот расширения уже занят.
	ErrAlreadyExtended = apperrors.NewAppError(apperrors.ErrLoggerAlreadyExtended,
		"logger has already been extended", nil)

	// ErrInvalidExtension - объект не реализует нужный интерфейс или вид расширения неизвестен.
	ErrInvalidExtension = apperrors.NewAppError(apperrors.ErrLoggerInvalidExtension,
		"extension does not implement the required capability", nil)

	// ErrMethodNotAllowed - отключение алертера, который не подключён.
	ErrMethodNotAllowed = apperrors.NewAppError(apperrors.ErrLoggerMethodNotAllowed,
		"logger is not extended, nothing to unextend", nil)

	// ErrAlertingUnavailable - алерт запрошен, но алертер не подключён.
	ErrAlertingUnavailable = apperrors.NewAppError(apperrors.ErrLoggerAlertingUnavailable,
		"logger has not been extended, alert service unavailable", nil)
)
