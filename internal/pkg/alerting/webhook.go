package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/Kargones/cblogger/internal/pkg/logging"
	"github.com/Kargones/cblogger/internal/pkg/urlutil"
)

// DefaultWebhookSource - значение поля source по умолчанию.
const DefaultWebhookSource = "cblogger"

// PayloadBuilder строит тело запроса для конкретного webhook.
// Результат сериализуется в JSON.
type PayloadBuilder func(alert Alert) any

// WebhookAlerter реализует Alerter для отправки через HTTP webhook.
type WebhookAlerter struct {
	config      WebhookConfig
	rateLimiter *RateLimiter
	logger      logging.Logger
	httpClient  HTTPClient
	hostname    string

	mu      sync.RWMutex
	targets []webhookTarget

	// initialBackoff - пауза перед первым повтором. Тесты уменьшают её.
	initialBackoff time.Duration
}

type webhookTarget struct {
	url   string
	build PayloadBuilder
}

// WebhookPayload - стандартный JSON payload webhook.
type WebhookPayload struct {
	Key       string         `json:"key"`
	Level     string         `json:"level"`
	Severity  string         `json:"severity"`
	Scope     string         `json:"scope,omitempty"`
	Message   string         `json:"message,omitempty"`
	Data      any            `json:"data,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Hostname  string         `json:"hostname,omitempty"`
}

// httpError представляет HTTP ошибку (не network).
type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// NewWebhookAlerter создаёт WebhookAlerter с указанной конфигурацией.
// Каждый URL из config.URLs получает стандартный payload.
func NewWebhookAlerter(config WebhookConfig, rateLimiter *RateLimiter, logger logging.Logger) (*WebhookAlerter, error) {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultWebhookTimeout
	}
	if config.Source == "" {
		config.Source = DefaultWebhookSource
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	w := &WebhookAlerter{
		config:         config,
		rateLimiter:    rateLimiter,
		logger:         logger,
		httpClient:     &http.Client{Timeout: timeout},
		hostname:       hostname,
		initialBackoff: time.Second,
	}
	for _, u := range config.URLs {
		w.targets = append(w.targets, webhookTarget{url: u, build: w.createPayload})
	}
	return w, nil
}

// SetHTTPClient устанавливает кастомный HTTPClient (для тестирования).
func (w *WebhookAlerter) SetHTTPClient(client HTTPClient) {
	w.httpClient = client
}

// AddWebhook добавляет получателя со своей функцией построения payload.
func (w *WebhookAlerter) AddWebhook(rawURL string, build PayloadBuilder) error {
	if build == nil {
		return ErrPayloadBuilderRequired
	}
	if err := validateWebhookURL(rawURL); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.targets = append(w.targets, webhookTarget{url: rawURL, build: build})
	return nil
}

func (w *WebhookAlerter) snapshotTargets() []webhookTarget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]webhookTarget(nil), w.targets...)
}

// Send отправляет алерт на все webhook.
// Применяет rate limiting по Key.
// Возвращает ErrDeliveryFailed, если ни один webhook не принял алерт.
func (w *WebhookAlerter) Send(ctx context.Context, alert Alert) error {
	// При создании через factory rateLimiter=nil: rate limiting на уровне MultiChannelAlerter.
	if w.rateLimiter != nil && !w.rateLimiter.Allow(alert.Key) {
		w.logger.Debug("алерт подавлен rate limiter",
			"key", alert.Key,
			"channel", ChannelWebhook,
		)
		return nil
	}

	targets := w.snapshotTargets()
	successCount := 0
	var lastErr error
	for i, target := range targets {
		select {
		case <-ctx.Done():
			w.logger.Debug("отправка webhook алерта отменена",
				"key", alert.Key,
				"remaining_urls", len(targets)-i,
			)
			return nil // Отмена - не ошибка
		default:
		}

		if err := w.sendWithRetry(ctx, target.url, target.build(alert)); err != nil {
			lastErr = err
			w.logger.Error("ошибка отправки webhook алерта",
				"error", err.Error(),
				"url", urlutil.MaskURL(target.url),
				"key", alert.Key,
			)
			continue
		}
		successCount++
	}

	switch {
	case successCount > 0:
		w.logger.Info("webhook алерт отправлен",
			"key", alert.Key,
			"severity", alert.Severity.String(),
			"urls_success", successCount,
			"urls_total", len(targets),
		)
	case len(targets) > 0:
		w.logger.Warn("webhook алерт не доставлен ни на один URL",
			"key", alert.Key,
			"urls_total", len(targets),
		)
		return fmt.Errorf("%w: webhook: %w", ErrDeliveryFailed, lastErr)
	}
	return nil
}

// createPayload - PayloadBuilder по умолчанию.
func (w *WebhookAlerter) createPayload(alert Alert) any {
	return WebhookPayload{
		Key:       alert.Key,
		Level:     alert.Level,
		Severity:  alert.Severity.String(),
		Scope:     alert.Scope,
		Message:   alert.Message,
		Data:      alert.Data,
		Extra:     alert.Extra,
		RequestID: alert.RequestID,
		Timestamp: alert.Timestamp,
		Source:    w.config.Source,
		Hostname:  w.hostname,
	}
}

// sendWithRetry отправляет запрос с retry логикой.
// Retry происходит для network ошибок и 5xx. HTTP 4xx не ретраятся.
func (w *WebhookAlerter) sendWithRetry(ctx context.Context, url string, payload any) error {
	// Ошибка сериализации не исправится повтором.
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	maxRetries := w.config.MaxRetries

	var lastErr error
	backoff := w.initialBackoff
	const maxBackoff = 4 * time.Second

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				backoff *= 2
				if backoff > maxBackoff {
					backoff = maxBackoff
				}
			}

			w.logger.Debug("webhook retry",
				"attempt", attempt,
				"max_retries", maxRetries,
				"error", lastErr.Error(),
				"url", urlutil.MaskURL(url),
			)
		}

		lastErr = w.sendRequest(ctx, url, jsonBody)
		if lastErr == nil {
			return nil
		}

		if isClientHTTPError(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", maxRetries+1, lastErr)
}

// sendRequest отправляет HTTP POST запрос с готовым JSON телом.
func (w *WebhookAlerter) sendRequest(ctx context.Context, url string, jsonBody []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "cblogger/1.0")

	for key, value := range w.config.Headers {
		req.Header.Set(key, value)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err // Network error - retry
	}
	defer resp.Body.Close()

	// 2xx - успех. Дренируем body для переиспользования keep-alive соединений.
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize)) //nolint:errcheck // best-effort drain
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	return &httpError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}

// isClientHTTPError проверяет, является ли ошибка клиентской HTTP ошибкой (4xx).
func isClientHTTPError(err error) bool {
	var httpErr *httpError
	if !errors.As(err, &httpErr) {
		return false
	}
	return httpErr.StatusCode >= 400 && httpErr.StatusCode < 500
}

// maxResponseBodySize - максимальный размер тела HTTP ответа для диагностики (1 KB).
const maxResponseBodySize = 1024
