package alerting

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/cblogger/internal/pkg/cblog"
)

func TestAlertFromRequest(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	req := cblog.AlertRequest{
		Level: cblog.LevelWarn,
		Key:   "disk_full",
		Data:  map[string]any{"free": 0, cblog.RequestIDField: "req-7"},
		Options: cblog.Options{
			Alert: true,
			Scope: "storage",
			Extra: map[string]any{"team": "infra"},
		},
		Err: cblog.ErrValue{Kind: cblog.ErrString, Text: "no space left"},
	}

	alert := AlertFromRequest(req, ts)

	assert.Equal(t, "disk_full", alert.Key)
	assert.Equal(t, "WARN", alert.Level)
	assert.Equal(t, SeverityWarning, alert.Severity)
	assert.Equal(t, "storage", alert.Scope)
	assert.Equal(t, "no space left", alert.Message)
	assert.Equal(t, "req-7", alert.RequestID)
	assert.Equal(t, req.Data, alert.Data)
	assert.Equal(t, "infra", alert.Extra["team"])
	assert.Equal(t, ts, alert.Timestamp)
}

func TestAlertFromRequest_NoErrNoRequestID(t *testing.T) {
	alert := AlertFromRequest(cblog.AlertRequest{Level: cblog.LevelInfo, Key: "k", Data: "text"}, time.Now())

	assert.Empty(t, alert.Message)
	assert.Empty(t, alert.RequestID)
	assert.Equal(t, SeverityInfo, alert.Severity)
}

func TestBridge_NilAlerter(t *testing.T) {
	b := NewBridge(nil)

	assert.NoError(t, b.Alert(context.Background(), cblog.AlertRequest{Key: "k"}))
}

// Bridge подключается к логгеру, ошибка доставки превращается в alert_error_response.
func TestBridge_WithLogger(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		rec := &recordingAlerter{}
		var stdout, stderr bytes.Buffer
		logger := cblog.New(cblog.WithOutput(&stdout, &stderr))
		require.NoError(t, logger.Extend(NewBridge(rec)))

		logger.Error("payment_failed", map[string]any{"order": 42},
			cblog.Options{Alert: true, Scope: "billing"}, errors.New("card declined"))

		sent := rec.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "payment_failed", sent[0].Key)
		assert.Equal(t, SeverityCritical, sent[0].Severity)
		assert.Equal(t, "billing", sent[0].Scope)
		assert.Equal(t, "card declined", sent[0].Message)
		assert.NotContains(t, stderr.String(), cblog.KeyAlertErrorResponse)
	})

	t.Run("delivery failure", func(t *testing.T) {
		rec := &recordingAlerter{err: ErrDeliveryFailed}
		var stdout, stderr bytes.Buffer
		logger := cblog.New(cblog.WithOutput(&stdout, &stderr))
		require.NoError(t, logger.Extend(NewBridge(rec)))

		logger.Info("k", nil, cblog.Options{Alert: true})

		assert.Equal(t, 1, strings.Count(stderr.String(), "ERROR: ** "+cblog.KeyAlertErrorResponse))
		assert.Contains(t, stderr.String(), "alert was not delivered")
	})
}
