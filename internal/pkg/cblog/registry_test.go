package cblog

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/cblogger/internal/pkg/apperrors"
)

func TestExtend_StateMachine(t *testing.T) {
	l, _, _ := newTestLogger()

	require.NoError(t, l.Extend(&mockAlerter{}))
	assert.True(t, l.Extended())

	err := l.Extend(&mockAlerter{})
	assert.ErrorIs(t, err, ErrAlreadyExtended)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrLoggerAlreadyExtended))

	require.NoError(t, l.Unextend())
	assert.False(t, l.Extended())

	assert.ErrorIs(t, l.Unextend(), ErrMethodNotAllowed)

	require.NoError(t, l.Extend(&mockAlerter{}))
	assert.True(t, l.Extended())
}

func TestExtend_FailedAttachKeepsSlot(t *testing.T) {
	l, _, _ := newTestLogger()
	first := &mockAlerter{}
	second := &mockAlerter{}

	require.NoError(t, l.Extend(first))
	require.Error(t, l.Extend(second))

	l.Info("k", nil, Options{Alert: true})

	assert.Len(t, first.calls(), 1)
	assert.Empty(t, second.calls())
}

func TestAttach(t *testing.T) {
	var nilAlerter *mockAlerter

	tests := []struct {
		name    string
		kind    ExtensionKind
		ext     any
		wantErr error
	}{
		{name: "alerter", kind: KindAlerter, ext: &mockAlerter{}},
		{name: "crash reporter", kind: KindCrashReporter, ext: &mockCrashReporter{}},
		{name: "alerter without Alert", kind: KindAlerter, ext: struct{}{}, wantErr: ErrInvalidExtension},
		{name: "crash reporter without Notify", kind: KindCrashReporter, ext: &mockAlerter{}, wantErr: ErrInvalidExtension},
		{name: "nil", kind: KindAlerter, ext: nil, wantErr: ErrInvalidExtension},
		{name: "typed nil", kind: KindAlerter, ext: nilAlerter, wantErr: ErrInvalidExtension},
		{name: "unknown kind", kind: "pager", ext: &mockAlerter{}, wantErr: ErrInvalidExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, _ := newTestLogger()

			err := l.Attach(tt.kind, tt.ext)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, l.Extended())
				assert.False(t, l.HasCrashReporter())
				return
			}
			assert.NoError(t, err)
			assert.True(t, l.Extended() || l.HasCrashReporter())
		})
	}
}

func TestAttachCrashReporter_Permanent(t *testing.T) {
	l, _, _ := newTestLogger()

	require.NoError(t, l.AttachCrashReporter(&mockCrashReporter{}))
	assert.True(t, l.HasCrashReporter())

	assert.ErrorIs(t, l.AttachCrashReporter(&mockCrashReporter{}), ErrAlreadyExtended)
	assert.ErrorIs(t, l.Attach(KindCrashReporter, &mockCrashReporter{}), ErrAlreadyExtended)

	// Unextend касается только алертера.
	assert.ErrorIs(t, l.Unextend(), ErrMethodNotAllowed)
	assert.True(t, l.HasCrashReporter())
}

func TestExtend_Concurrent(t *testing.T) {
	l, _, _ := newTestLogger()

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.Extend(&mockAlerter{})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrAlreadyExtended):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(49), rejected.Load())
}

func TestErrors_DistinctKinds(t *testing.T) {
	all := []error{ErrAlreadyExtended, ErrInvalidExtension, ErrMethodNotAllowed, ErrAlertingUnavailable}

	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}
