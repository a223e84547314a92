package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()

	assert.NotPanics(t, func() {
		logger.Debug("debug", "k", "v")
		logger.Info("info")
		logger.Warn("warn", "odd")
		logger.Error("error", "k", nil)
	})
	assert.Same(t, logger, logger.With("k", "v").With("x", 1))
}
