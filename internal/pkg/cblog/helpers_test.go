package cblog

import (
	"bytes"
	"context"
	"sync"
	"time"
)

var testTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const testTimestamp = "at 2024-01-01 00:00:00.000 (1704067200000)"

var testSite = CallSite{Source: "file.ext L12", Stack: "stack-trace"}

func fixedClock() time.Time { return testTime }

func fixedResolver(int) CallSite { return testSite }

// newTestLogger создаёт логгер с буферами вместо потоков, фиксированным временем и местом вызова.
func newTestLogger(opts ...Option) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	base := []Option{
		WithOutput(&stdout, &stderr),
		WithClock(fixedClock),
		WithResolver(fixedResolver),
	}
	return New(append(base, opts...)...), &stdout, &stderr
}

// expectedLine строит ожидаемую строку записи с тестовыми временем и местом вызова.
func expectedLine(level Level, key string, data any, opts Options, errv ErrValue) string {
	return Line(Format(Record{
		Level:    level,
		Key:      key,
		Data:     data,
		Options:  opts,
		Err:      errv,
		CallSite: testSite,
		Time:     testTime,
	})) + "\n"
}

// mockAlerter записывает запросы и возвращает заданную ошибку или паникует.
type mockAlerter struct {
	mu       sync.Mutex
	requests []AlertRequest
	err      error
	panicVal any
	onAlert  func()
}

func (m *mockAlerter) Alert(_ context.Context, req AlertRequest) error {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.onAlert != nil {
		m.onAlert()
	}
	if m.panicVal != nil {
		panic(m.panicVal)
	}
	return m.err
}

func (m *mockAlerter) calls() []AlertRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]AlertRequest(nil), m.requests...)
}

type crashCall struct {
	err error
	ctx CrashContext
}

// mockCrashReporter записывает уведомления.
type mockCrashReporter struct {
	mu       sync.Mutex
	notified []crashCall
	panics   bool
	onNotify func()
}

func (m *mockCrashReporter) Notify(_ context.Context, err error, c CrashContext) {
	m.mu.Lock()
	m.notified = append(m.notified, crashCall{err: err, ctx: c})
	m.mu.Unlock()
	if m.onNotify != nil {
		m.onNotify()
	}
	if m.panics {
		panic("crash reporter is broken")
	}
}

func (m *mockCrashReporter) calls() []crashCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]crashCall(nil), m.notified...)
}

type staticRequestID string

func (s staticRequestID) CurrentID(context.Context) (string, bool) {
	if s == "" {
		return "", false
	}
	return string(s), true
}

// countingObserver считает события логгера.
type countingObserver struct {
	mu      sync.Mutex
	records map[Level]int
	alerts  map[AlertOutcome]int
	crashes int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{
		records: make(map[Level]int),
		alerts:  make(map[AlertOutcome]int),
	}
}

func (o *countingObserver) ObserveRecord(level Level) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records[level]++
}

func (o *countingObserver) ObserveAlert(outcome AlertOutcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.alerts[outcome]++
}

func (o *countingObserver) ObserveCrashReport() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.crashes++
}
