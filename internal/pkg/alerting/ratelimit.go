package alerting

import (
	"sync"
	"time"
)

// RateLimiter контролирует частоту отправки алертов.
// Хранит в памяти время последней отправки по ключу записи.
// Thread-safe через sync.Mutex.
//
// ВАЖНО: ограничение действует только в пределах одного процесса.
// Каждый запуск CLI cblogger получает пустой RateLimiter,
// поэтому для CLI оно полезно лишь при нескольких алертах за запуск.
type RateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	sent   map[string]time.Time
	// now используется для тестирования (позволяет mock времени)
	now func() time.Time
}

// NewRateLimiter создаёт RateLimiter с указанным интервалом.
// Window определяет минимальный интервал между алертами с одним ключом.
//
// Пример:
//
//	limiter := NewRateLimiter(5 * time.Minute)
//	if limiter.Allow("db_conn_fail") {
//	    // Можно отправить алерт
//	}
func NewRateLimiter(window time.Duration) *RateLimiter {
	return &RateLimiter{
		window: window,
		sent:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// cleanupThreshold - порог количества записей, после которого запускается очистка.
const cleanupThreshold = 100

// Allow проверяет, можно ли отправить алерт с данным ключом.
// При возврате true помечает ключ как отправленный с текущим временем.
// Проверка и обновление выполняются под mutex.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	if len(r.sent) > cleanupThreshold {
		r.cleanupExpiredLocked(now)
	}

	if lastSent, ok := r.sent[key]; ok {
		if now.Sub(lastSent) < r.window {
			return false // rate limited
		}
	}
	r.sent[key] = now
	return true
}

// cleanupExpiredLocked удаляет записи с истёкшим window.
// Вызывается под mutex.
func (r *RateLimiter) cleanupExpiredLocked(now time.Time) {
	for key, lastSent := range r.sent {
		if now.Sub(lastSent) >= r.window {
			delete(r.sent, key)
		}
	}
}

// Reset сбрасывает состояние для ключа.
func (r *RateLimiter) Reset(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sent, key)
}

// ResetAll сбрасывает состояние для всех ключей.
func (r *RateLimiter) ResetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = make(map[string]time.Time)
}

// SetNowFunc устанавливает функцию получения текущего времени.
// Используется для тестирования.
func (r *RateLimiter) SetNowFunc(fn func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = fn
}
