package tracing

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var traceIDPattern = regexp.MustCompile("^[0-9a-f]{32}$")

func TestGenerateTraceID_Format(t *testing.T) {
	id := GenerateTraceID()
	assert.Regexp(t, traceIDPattern, id)
}

func TestGenerateTraceID_UniqueConcurrent(t *testing.T) {
	const n = 100
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := GenerateTraceID()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
}

func TestFallbackTraceID(t *testing.T) {
	a, b := fallbackTraceID(), fallbackTraceID()
	assert.Regexp(t, traceIDPattern, a)
	assert.Regexp(t, traceIDPattern, b)
	assert.NotEqual(t, a, b)
}
