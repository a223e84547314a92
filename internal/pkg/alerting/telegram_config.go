package alerting

import "time"

// DefaultTelegramTimeout - таймаут Telegram API по умолчанию.
const DefaultTelegramTimeout = 10 * time.Second

// TelegramConfig содержит настройки telegram канала для alerting пакета.
type TelegramConfig struct {
	// Enabled - включён ли telegram канал.
	Enabled bool

	// BotToken - токен Telegram бота (получить у @BotFather).
	BotToken string

	// ChatIDs - список идентификаторов чатов/групп для отправки.
	ChatIDs []string

	// Timeout - таймаут HTTP запросов к Telegram API.
	Timeout time.Duration

	// APIBaseURL переопределяет TelegramAPIBaseURL (для тестов и прокси).
	APIBaseURL string
}

// Validate проверяет корректность TelegramConfig.
func (t *TelegramConfig) Validate() error {
	if !t.Enabled {
		return nil
	}
	if t.BotToken == "" {
		return ErrTelegramBotTokenRequired
	}
	if len(t.ChatIDs) == 0 {
		return ErrTelegramChatIDRequired
	}
	for _, chatID := range t.ChatIDs {
		if !validChatID(chatID) {
			return ErrTelegramChatIDInvalid
		}
	}
	return nil
}

// validChatID принимает @username и числовой ID (в том числе отрицательный для групп).
func validChatID(chatID string) bool {
	if chatID == "" {
		return false
	}
	if chatID[0] == '@' {
		return true
	}
	digits := chatID
	if chatID[0] == '-' {
		digits = chatID[1:]
	}
	if digits == "" {
		return false
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
