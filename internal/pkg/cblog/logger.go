package cblog

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Ключи служебных записей.
const (
	// KeyCannotAlert - алерт запрошен без подключённого алертера.
	KeyCannotAlert = "logger_cannot_alert"
	// KeyAlertErrorResponse - алертер вернул ошибку.
	KeyAlertErrorResponse = "alert_error_response"
	// KeyAlertErrorThrown - алертер запаниковал.
	KeyAlertErrorThrown = "alert_error_thrown"
)

// RequestIDField - поле данных, в которое попадает идентификатор запроса.
const RequestIDField = "_requestId"

// Logger пишет записи в stdout/stderr и передаёт их подключённым расширениям.
// Безопасен для конкурентного использования.
type Logger struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	now        func() time.Time
	resolver   Resolver
	requestIDs RequestIDSource
	observer   Observer

	alerter atomic.Pointer[alerterSlot]
	crash   atomic.Pointer[crashSlot]
}

// Option настраивает Logger при создании.
type Option func(*Logger)

// WithOutput задаёт потоки для DEBUG/INFO и WARN/ERROR.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(l *Logger) {
		if stdout != nil {
			l.stdout = stdout
		}
		if stderr != nil {
			l.stderr = stderr
		}
	}
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithResolver подменяет вычисление места вызова.
func WithResolver(r Resolver) Option {
	return func(l *Logger) {
		if r != nil {
			l.resolver = r
		}
	}
}

// WithRequestIDSource задаёт источник идентификатора запроса. nil - источника нет.
func WithRequestIDSource(src RequestIDSource) Option {
	return func(l *Logger) {
		l.requestIDs = src
	}
}

// WithObserver задаёт наблюдателя событий логгера.
func WithObserver(o Observer) Option {
	return func(l *Logger) {
		l.observer = o
	}
}

// New создаёт логгер с пустыми слотами расширений.
func New(opts ...Option) *Logger {
	l := &Logger{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		now:      time.Now,
		resolver: ResolveCallSite,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Debug пишет DEBUG-запись. args: data, options, err.
func (l *Logger) Debug(key string, args ...any) {
	l.dispatch(context.Background(), LevelDebug, key, args)
}

// Info пишет INFO-запись.
func (l *Logger) Info(key string, args ...any) {
	l.dispatch(context.Background(), LevelInfo, key, args)
}

// Warn пишет WARN-запись в stderr.
func (l *Logger) Warn(key string, args ...any) {
	l.dispatch(context.Background(), LevelWarn, key, args)
}

// Error пишет ERROR-запись в stderr.
func (l *Logger) Error(key string, args ...any) {
	l.dispatch(context.Background(), LevelError, key, args)
}

// DebugContext - Debug с контекстом для идентификатора запроса и расширений.
func (l *Logger) DebugContext(ctx context.Context, key string, args ...any) {
	l.dispatch(ctx, LevelDebug, key, args)
}

// InfoContext - Info с контекстом.
func (l *Logger) InfoContext(ctx context.Context, key string, args ...any) {
	l.dispatch(ctx, LevelInfo, key, args)
}

// WarnContext - Warn с контекстом.
func (l *Logger) WarnContext(ctx context.Context, key string, args ...any) {
	l.dispatch(ctx, LevelWarn, key, args)
}

// ErrorContext - Error с контекстом.
func (l *Logger) ErrorContext(ctx context.Context, key string, args ...any) {
	l.dispatch(ctx, LevelError, key, args)
}

// Log пишет запись произвольного уровня.
func (l *Logger) Log(ctx context.Context, level Level, key string, args ...any) {
	l.dispatch(ctx, level, key, args)
}

// dispatch должен вызываться напрямую из публичных методов:
// от этого зависит число пропускаемых кадров стека.
func (l *Logger) dispatch(ctx context.Context, level Level, key string, args []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	// 0: dispatch, 1: публичный метод, 2: вызывающий код.
	site := l.resolver(2)

	data, opts, errv := normalizeArgs(args)
	data = l.emit(ctx, level, key, data, opts, errv, site)

	if opts.Alert {
		l.alert(ctx, level, key, data, opts, errv, site)
	}
}

// emit пишет одну запись и уведомляет crash reporter.
// Возвращает данные после добавления идентификатора запроса.
func (l *Logger) emit(ctx context.Context, level Level, key string, data any, opts Options, errv ErrValue, site CallSite) any {
	if l.requestIDs != nil {
		if id, ok := l.requestIDs.CurrentID(ctx); ok && id != "" {
			data = injectRequestID(data, id)
		}
	}

	line := Line(Format(Record{
		Level:    level,
		Key:      key,
		Data:     data,
		Options:  opts,
		Err:      errv,
		CallSite: site,
		Time:     l.now(),
	})) + "\n"

	w := l.stdout
	if level.toStderr() {
		w = l.stderr
	}
	l.mu.Lock()
	_, _ = io.WriteString(w, line)
	l.mu.Unlock()

	if l.observer != nil {
		l.observer.ObserveRecord(level)
	}

	if level == LevelError && errv.Present() {
		l.notifyCrash(ctx, key, data, errv)
	}
	return data
}

func (l *Logger) notifyCrash(ctx context.Context, key string, data any, errv ErrValue) {
	slot := l.crash.Load()
	if slot == nil {
		return
	}
	if l.observer != nil {
		l.observer.ObserveCrashReport()
	}
	defer func() {
		_ = recover()
	}()
	slot.reporter.Notify(ctx, errv.AsError(), CrashContext{Name: key, Context: data})
}

func (l *Logger) alert(ctx context.Context, level Level, key string, data any, opts Options, errv ErrValue, site CallSite) {
	slot := l.alerter.Load()
	if slot == nil {
		l.observeAlert(AlertUnavailable)
		l.emit(ctx, LevelError, KeyCannotAlert, nil, Options{Stack: true},
			ErrValue{Kind: ErrStructured, Value: ErrAlertingUnavailable}, site)
		return
	}

	respErr, thrown := invokeAlerter(ctx, slot.alerter, AlertRequest{
		Level:   level,
		Key:     key,
		Data:    data,
		Options: opts,
		Err:     errv,
	})

	diag := map[string]any{"key": key, "level": level.String()}
	switch {
	case thrown != nil:
		l.observeAlert(AlertPanicked)
		l.emit(ctx, LevelError, KeyAlertErrorThrown, diag, Options{}, errValueOf(thrown), site)
	case respErr != nil:
		l.observeAlert(AlertFailed)
		l.emit(ctx, LevelError, KeyAlertErrorResponse, diag, Options{}, errValueOf(respErr), site)
	default:
		l.observeAlert(AlertSent)
	}
}

func (l *Logger) observeAlert(o AlertOutcome) {
	if l.observer != nil {
		l.observer.ObserveAlert(o)
	}
}

// invokeAlerter отделяет возвращённую ошибку от паники алертера.
func invokeAlerter(ctx context.Context, a Alerter, req AlertRequest) (respErr, thrown error) {
	defer func() {
		if r := recover(); r != nil {
			thrown = panicError(r)
		}
	}()
	return a.Alert(ctx, req), nil
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("alerter panic: %v", r)
}
