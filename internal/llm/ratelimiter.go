package llm

import (
	"sync"
	"time"
)

type windowEntry struct {
	count   int
	resetAt time.Time
}

// ClientLimiter is a fixed-window request counter keyed by client
// identifier. Each window starts on the client's first request and resets
// once it elapses. State is per process; separate instances do not share
// limits.
type ClientLimiter struct {
	window time.Duration
	max    int

	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

// NewClientLimiter allows at most max requests per client within each window.
func NewClientLimiter(window time.Duration, max int) *ClientLimiter {
	return &ClientLimiter{
		window:  window,
		max:     max,
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

// Allow reports whether the client may make another request, counting it if
// so.
func (l *ClientLimiter) Allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[clientID]
	if !ok || now.After(entry.resetAt) {
		l.entries[clientID] = &windowEntry{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if entry.count >= l.max {
		return false
	}
	entry.count++
	return true
}
