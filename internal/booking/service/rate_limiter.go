package service

import (
	"sync"
	"time"
)

// LoginLimiter counts login attempts per client IP over a fixed window.
// Fixed windows are deliberately simple: a client can fit up to 2x the limit
// across a window boundary, which is acceptable for login throttling.
//
// One limiter is constructed per server instance and shared by reference;
// counters live only in memory, so limits are per instance.
type LoginLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	clients map[string]limiterWindow
}

type limiterWindow struct {
	start time.Time
	count int
}

func NewLoginLimiter(limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		clients: make(map[string]limiterWindow),
	}
}

// Allow reports whether the client may attempt a login now. Unknown clients
// and clients whose window has elapsed always start a fresh window. Once the
// limit is reached further attempts are rejected without incrementing.
func (l *LoginLimiter) Allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, ok := l.clients[clientIP]
	if !ok || now.Sub(w.start) >= l.window {
		l.clients[clientIP] = limiterWindow{start: now, count: 1}
		return true
	}
	if w.count >= l.limit {
		return false
	}

	w.count++
	l.clients[clientIP] = w

	return true
}
