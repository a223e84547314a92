// Package urlutil предоставляет утилиты для безопасной работы с URL.
package urlutil

import (
	"net/url"
	"strings"
)

// RedactedPlaceholder подставляется вместо секрета.
const RedactedPlaceholder = "[REDACTED]"

// MaskURL маскирует URL для безопасного логирования.
// Скрывает path и query параметры, которые могут содержать токены или credentials.
// Пример: "https://hooks.slack.com/services/XXX/YYY/ZZZ" → "https://hooks.slack.com/***"
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "***invalid-url***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}

// RedactToken заменяет все вхождения token в s на RedactedPlaceholder.
// Пустой token не меняет строку.
func RedactToken(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, RedactedPlaceholder)
}
