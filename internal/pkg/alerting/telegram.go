package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Kargones/cblogger/internal/pkg/logging"
	"github.com/Kargones/cblogger/internal/pkg/urlutil"
)

// TelegramAPIBaseURL - базовый URL Telegram Bot API.
const TelegramAPIBaseURL = "https://api.telegram.org/bot"

// TelegramParseMode - режим парсинга сообщений.
// TODO: мигрировать на "MarkdownV2", он требует другого escaping (см. escapeMarkdown).
const TelegramParseMode = "Markdown"

// maxTelegramResponseSize - максимальный размер тела ответа Telegram API (1 KB).
const maxTelegramResponseSize = 1024

// maxTelegramDataSize - предел длины JSON-представления данных в сообщении.
const maxTelegramDataSize = 1024

// HTTPClient определяет интерфейс HTTP клиента для тестирования.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TelegramAlerter реализует Alerter для отправки в Telegram.
type TelegramAlerter struct {
	config      TelegramConfig
	rateLimiter *RateLimiter
	logger      logging.Logger
	httpClient  HTTPClient
}

// NewTelegramAlerter создаёт TelegramAlerter с указанной конфигурацией.
func NewTelegramAlerter(config TelegramConfig, rateLimiter *RateLimiter, logger logging.Logger) (*TelegramAlerter, error) {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTelegramTimeout
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = TelegramAPIBaseURL
	}

	return &TelegramAlerter{
		config:      config,
		rateLimiter: rateLimiter,
		logger:      logger,
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

// SetHTTPClient устанавливает кастомный HTTPClient (для тестирования).
func (t *TelegramAlerter) SetHTTPClient(client HTTPClient) {
	t.httpClient = client
}

// Send отправляет алерт во все чаты.
// Возвращает ErrDeliveryFailed, если ни один чат не получил сообщение.
func (t *TelegramAlerter) Send(ctx context.Context, alert Alert) error {
	if t.rateLimiter != nil && !t.rateLimiter.Allow(alert.Key) {
		t.logger.Debug("алерт подавлен rate limiter",
			"key", alert.Key,
			"channel", ChannelTelegram,
		)
		return nil
	}

	message := t.formatMessage(alert)

	successCount := 0
	var lastErr error
	for i, chatID := range t.config.ChatIDs {
		select {
		case <-ctx.Done():
			t.logger.Debug("отправка telegram алерта отменена",
				"key", alert.Key,
				"remaining_chats", len(t.config.ChatIDs)-i,
			)
			return nil
		default:
		}

		if err := t.sendToChat(ctx, chatID, message); err != nil {
			lastErr = err
			t.logger.Error("ошибка отправки telegram алерта",
				"error", err.Error(),
				"chat_id", chatID,
				"key", alert.Key,
			)
			continue
		}
		successCount++
	}

	switch {
	case successCount > 0:
		t.logger.Info("telegram алерт отправлен",
			"key", alert.Key,
			"severity", alert.Severity.String(),
			"chats_success", successCount,
			"chats_total", len(t.config.ChatIDs),
		)
	case len(t.config.ChatIDs) > 0:
		t.logger.Warn("telegram алерт не доставлен ни в один чат",
			"key", alert.Key,
			"chats_total", len(t.config.ChatIDs),
		)
		return fmt.Errorf("%w: telegram: %w", ErrDeliveryFailed, lastErr)
	}
	return nil
}

// formatMessage форматирует алерт в Markdown для Telegram.
func (t *TelegramAlerter) formatMessage(alert Alert) string {
	var sb strings.Builder

	sb.WriteString("🚨 *cblogger Alert*\n\n")

	sb.WriteString("*Key:* `")
	sb.WriteString(escapeMarkdown(alert.Key))
	sb.WriteString("`\n")

	sb.WriteString("*Level:* ")
	sb.WriteString(escapeMarkdown(alert.Level))
	sb.WriteString(" (")
	sb.WriteString(escapeMarkdown(alert.Severity.String()))
	sb.WriteString(")\n")

	if alert.Scope != "" {
		sb.WriteString("*Scope:* ")
		sb.WriteString(escapeMarkdown(alert.Scope))
		sb.WriteString("\n")
	}

	if alert.Message != "" {
		sb.WriteString("\n*Error:*\n")
		sb.WriteString(escapeMarkdown(alert.Message))
		sb.WriteString("\n")
	}

	if data := formatData(alert.Data); data != "" {
		sb.WriteString("\n*Data:*\n")
		sb.WriteString(escapeMarkdown(data))
		sb.WriteString("\n")
	}

	if alert.RequestID != "" {
		sb.WriteString("\n_Request ID:_ `")
		sb.WriteString(escapeMarkdown(alert.RequestID))
		sb.WriteString("`")
	}

	sb.WriteString("\n_Time:_ ")
	sb.WriteString(escapeMarkdown(alert.Timestamp.Format(time.RFC3339)))

	return sb.String()
}

// formatData сериализует данные в JSON, обрезая длинный результат.
func formatData(data any) string {
	if data == nil {
		return ""
	}
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	if len(b) > maxTelegramDataSize {
		cut := maxTelegramDataSize
		for cut > 0 && !utf8.RuneStart(b[cut]) {
			cut--
		}
		return string(b[:cut]) + "…"
	}
	return string(b)
}

// markdownReplacer экранирует символы Markdown v1.
// Backslash экранируется ПЕРВЫМ, чтобы не удваивать экранирование остальных символов.
var markdownReplacer = strings.NewReplacer(
	`\`, `\\`,
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	">", "\\>",
)

// escapeMarkdown экранирует специальные символы Markdown v1 для Telegram.
// Скобки экранируются для защиты от инъекции inline ссылок [text](url).
func escapeMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}

// telegramRequest представляет запрос к Telegram API sendMessage.
type telegramRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// telegramResponse представляет ответ Telegram API.
type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// sendToChat отправляет сообщение в конкретный чат.
func (t *TelegramAlerter) sendToChat(ctx context.Context, chatID, message string) error {
	url := fmt.Sprintf("%s%s/sendMessage", t.config.APIBaseURL, t.config.BotToken)

	jsonBody, err := json.Marshal(telegramRequest{
		ChatID:    chatID,
		Text:      message,
		ParseMode: TelegramParseMode,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		// Go stdlib включает URL (с BotToken) в текст ошибки.
		return fmt.Errorf("HTTP request failed: %s", urlutil.RedactToken(err.Error(), t.config.BotToken))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTelegramResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var telegramResp telegramResponse
	if err := json.Unmarshal(body, &telegramResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if !telegramResp.OK {
		return fmt.Errorf("telegram API error %d: %s", telegramResp.ErrorCode, telegramResp.Description)
	}

	return nil
}
