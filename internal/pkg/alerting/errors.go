package alerting

import "errors"

// Ошибки валидации конфигурации.
var (
	// ErrTelegramBotTokenRequired - bot token не указан.
	ErrTelegramBotTokenRequired = errors.New("alerting: bot_token is required when telegram channel is enabled")

	// ErrTelegramChatIDRequired - chat_id не указан.
	ErrTelegramChatIDRequired = errors.New("alerting: at least one chat_id is required when telegram channel is enabled")

	// ErrTelegramChatIDInvalid - chat_id имеет невалидный формат (ожидается числовой ID или @username).
	ErrTelegramChatIDInvalid = errors.New("alerting: chat_id must be a numeric ID or @username")

	// ErrWebhookURLRequired - URL для webhook не указан.
	ErrWebhookURLRequired = errors.New("alerting: at least one url is required when webhook channel is enabled")

	// ErrWebhookURLInvalid - URL имеет невалидный формат.
	ErrWebhookURLInvalid = errors.New("alerting: webhook url has invalid format (must have scheme and host)")

	// ErrWebhookHeaderInvalid - HTTP заголовок содержит недопустимые символы.
	ErrWebhookHeaderInvalid = errors.New("alerting: webhook header contains invalid characters (\\r or \\n)")

	// ErrPayloadBuilderRequired - AddWebhook вызван без функции построения payload.
	ErrPayloadBuilderRequired = errors.New("alerting: payload builder is required")
)

// ErrDeliveryFailed - алерт не доставлен ни одному получателю канала.
var ErrDeliveryFailed = errors.New("alerting: alert was not delivered")
