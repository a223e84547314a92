// Package testutil содержит общие утилиты для тестирования.
package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout выполняет fn, перехватывая stdout, и возвращает вывод.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	stdout, _ := CaptureOutput(t, fn)
	return stdout
}

// CaptureStderr выполняет fn, перехватывая stderr, и возвращает вывод.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	_, stderr := CaptureOutput(t, fn)
	return stderr
}

// CaptureOutput выполняет fn, перехватывая stdout и stderr.
// Вывод fn не должен превышать размер буфера pipe (64 KB).
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	oldStdout, oldStderr := os.Stdout, os.Stderr

	outR, outW, err := os.Pipe()
	require.NoError(t, err, "не удалось создать pipe для stdout")
	errR, errW, err := os.Pipe()
	require.NoError(t, err, "не удалось создать pipe для stderr")

	os.Stdout, os.Stderr = outW, errW
	defer func() { os.Stdout, os.Stderr = oldStdout, oldStderr }()

	fn()

	_ = outW.Close() //nolint:errcheck // test helper pipe close
	_ = errW.Close() //nolint:errcheck // test helper pipe close

	var outBuf, errBuf bytes.Buffer
	_, err = outBuf.ReadFrom(outR)
	require.NoError(t, err, "не удалось прочитать stdout")
	_, err = errBuf.ReadFrom(errR)
	require.NoError(t, err, "не удалось прочитать stderr")
	return outBuf.String(), errBuf.String()
}
