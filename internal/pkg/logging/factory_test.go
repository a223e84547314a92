package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Kargones/cblogger/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsSlogAdapter(t *testing.T) {
	for _, format := range []string{"", FormatText, FormatJSON} {
		logger := NewLogger(Config{Format: format})
		_, ok := logger.(*SlogAdapter)
		assert.True(t, ok, "format %q: NewLogger должен возвращать *SlogAdapter", format)
	}
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	tests := []struct {
		level   string
		visible []string
		hidden  []string
	}{
		{LevelDebug, []string{"d-msg", "i-msg", "w-msg", "e-msg"}, nil},
		{LevelInfo, []string{"i-msg", "w-msg", "e-msg"}, []string{"d-msg"}},
		{LevelWarn, []string{"w-msg", "e-msg"}, []string{"d-msg", "i-msg"}},
		{LevelError, []string{"e-msg"}, []string{"d-msg", "i-msg", "w-msg"}},
		{"verbose", []string{"i-msg"}, []string{"d-msg"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(Config{Level: tt.level}, &buf)

			logger.Debug("d-msg")
			logger.Info("i-msg")
			logger.Warn("w-msg")
			logger.Error("e-msg")

			for _, msg := range tt.visible {
				assert.Contains(t, buf.String(), msg)
			}
			for _, msg := range tt.hidden {
				assert.NotContains(t, buf.String(), msg)
			}
		})
	}
}

func TestNewLoggerWithWriter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Format: FormatJSON, Level: LevelInfo}, &buf)

	logger.Info("алерт отправлен", "channel", "webhook", "urls", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "алерт отправлен", entry["msg"])
	assert.Equal(t, "webhook", entry["channel"])
	assert.Equal(t, float64(2), entry["urls"])
}

func TestNewLoggerWithWriter_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Format: FormatText}, &buf)

	logger.Warn("rate limited", "key", "db_down")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="rate limited"`)
	assert.Contains(t, out, "key=db_down")
}

func TestNewLogger_WritesToStderrOnly(t *testing.T) {
	for _, output := range []string{"", OutputStderr} {
		stdout, stderr := testutil.CaptureOutput(t, func() {
			NewLogger(Config{Output: output}).Info("stderr only")
		})
		assert.Empty(t, stdout, "output %q: stdout должен быть пустым", output)
		assert.Contains(t, stderr, "stderr only")
	}
}

func TestNewLogger_UnknownOutput_FallbackToStderr(t *testing.T) {
	stderr := testutil.CaptureStderr(t, func() {
		NewLogger(Config{Output: "syslog"}).Info("fallback message")
	})
	assert.Contains(t, stderr, `неизвестный logging output "syslog"`)
	assert.Contains(t, stderr, "fallback message")
}

func TestNewLogger_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "dir", "cblogger.log")

	logger := NewLogger(Config{
		Level:    LevelInfo,
		Format:   FormatJSON,
		Output:   OutputFile,
		FilePath: logFile,
		MaxSize:  1,
	})
	logger.Info("first", "n", 1)
	logger.Info("second", "n", 2)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err, "файл лога должен быть создан вместе с директориями")

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		assert.NoError(t, json.Unmarshal([]byte(line), &entry))
	}
}

func TestNewLogger_FileOutput_EmptyFilePath(t *testing.T) {
	stderr := testutil.CaptureStderr(t, func() {
		NewLogger(Config{Output: OutputFile}).Info("empty filepath fallback")
	})
	assert.Contains(t, stderr, "filePath is empty")
	assert.Contains(t, stderr, "empty filepath fallback")
}

func TestNewLogger_FileOutput_UncreatableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	stderr := testutil.CaptureStderr(t, func() {
		NewLogger(Config{Output: OutputFile, FilePath: filepath.Join(blocker, "sub", "x.log")}).Error("still logged")
	})
	assert.Contains(t, stderr, "не удалось создать директорию логов")
	assert.Contains(t, stderr, "still logged")
}

func TestNewLoggerWithWriter_HandlerOptionsApplied(t *testing.T) {
	var buf bytes.Buffer
	var order []string
	mark := func(name string) HandlerOption {
		return func(h slog.Handler) slog.Handler {
			order = append(order, name)
			return h
		}
	}

	logger := NewLoggerWithWriter(Config{}, &buf, mark("first"), nil, mark("second"))
	logger.Info("x")

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Contains(t, buf.String(), "msg=x")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, OutputStderr, cfg.Output)
	assert.Equal(t, "/var/log/cblogger.log", cfg.FilePath)
	assert.True(t, cfg.Compress)
}
