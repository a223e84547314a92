package cblog

import (
	"fmt"
	"strings"
)

// Level определяет уровень записи.
type Level int

// Поддерживаемые уровни.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String возвращает имя уровня в том виде, в котором оно попадает в запись.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// toStderr сообщает, пишется ли уровень в поток ошибок.
func (l Level) toStderr() bool {
	return l >= LevelWarn
}

// ParseLevel конвертирует строку в Level без учёта регистра.
// Принимает "debug", "info", "warn", "warning", "error".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelDebug, fmt.Errorf("cblog: unknown level %q", s)
	}
}
