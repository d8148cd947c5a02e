package limiter

import (
	"context"
	"sync"
	"time"

	goCache "github.com/patrickmn/go-cache"
)

// MemoryLimiter keeps failure counters in process; suitable for a single replica.
type MemoryLimiter struct {
	mu          sync.Mutex
	cache       *goCache.Cache
	maxAttempts int
	window      time.Duration
}

func NewMemoryLimiter(maxAttempts int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		cache:       goCache.New(window, 2*window),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, expiresAt, found := l.cache.GetWithExpiration(key)
	if !found || v.(int) < l.maxAttempts {
		return true, 0, nil
	}
	return false, time.Until(expiresAt), nil
}

func (l *MemoryLimiter) Failure(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.cache.IncrementInt(key, 1); err != nil {
		l.cache.Set(key, 1, l.window)
	}
	return nil
}

func (l *MemoryLimiter) Success(_ context.Context, key string) error {
	l.cache.Delete(key)
	return nil
}

var _ Limiter = (*MemoryLimiter)(nil)
