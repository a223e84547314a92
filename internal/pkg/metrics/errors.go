package metrics

import "errors"

var (
	// ErrPushgatewayURLRequired - URL Pushgateway не указан при включённых метриках.
	ErrPushgatewayURLRequired = errors.New("metrics: pushgateway URL is required when metrics enabled")

	// ErrJobNameRequired - имя job не указано.
	ErrJobNameRequired = errors.New("metrics: job name is required")

	// ErrInvalidTimeout - таймаут не положительный.
	ErrInvalidTimeout = errors.New("metrics: timeout must be positive")

	// ErrPushgatewayURLInvalid - URL Pushgateway без scheme или host.
	ErrPushgatewayURLInvalid = errors.New("metrics: pushgateway URL has invalid format")
)
