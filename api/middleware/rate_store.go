package middleware

import (
	"context"
	"sync"
	"time"
)

type rateWindow struct {
	count     int64
	expiresAt time.Time
}

// MemoryRateStore is a process-local RateLimiterStore used when Redis is not configured.
type MemoryRateStore struct {
	mu      sync.Mutex
	windows map[string]rateWindow
	now     func() time.Time
}

func NewMemoryRateStore() *MemoryRateStore {
	return &MemoryRateStore{windows: map[string]rateWindow{}, now: time.Now}
}

// IncrWithTTL increments key and starts a new window when the previous one expired.
func (s *MemoryRateStore) IncrWithTTL(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	win, ok := s.windows[key]
	if !ok || !now.Before(win.expiresAt) {
		s.sweep(now)
		win = rateWindow{expiresAt: now.Add(ttl)}
	}
	win.count++
	s.windows[key] = win
	return win.count, nil
}

func (s *MemoryRateStore) sweep(now time.Time) {
	for key, win := range s.windows {
		if !now.Before(win.expiresAt) {
			delete(s.windows, key)
		}
	}
}
