package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultIdleTimeout is how long a client's limiter is kept after its last request.
const DefaultIdleTimeout = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client address gets its own limiter, so one noisy caller cannot use
// up the allowance of others. Limiters of clients idle for longer than the
// idle timeout are dropped.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientEntry
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LimiterOption configures a ClientLimiter.
type LimiterOption func(*ClientLimiter)

// WithIdleTimeout sets how long an idle client's limiter is retained.
// Defaults to DefaultIdleTimeout.
func WithIdleTimeout(d time.Duration) LimiterOption {
	return func(l *ClientLimiter) {
		l.idle = d
	}
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst.
func NewClientLimiter(rps float64, burst int, opts ...LimiterOption) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	l := &ClientLimiter{
		clients:   make(map[string]*clientEntry),
		limit:     rate.Limit(rps),
		burst:     burst,
		idle:      DefaultIdleTimeout,
		lastSweep: time.Now(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether a request from client may proceed now.
func (l *ClientLimiter) Allow(client string) bool {
	now := time.Now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	entry, ok := l.clients[client]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep drops clients idle since before now minus the idle timeout.
// Callers must hold l.mu.
func (l *ClientLimiter) sweep(now time.Time) {
	for client, entry := range l.clients {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.clients, client)
		}
	}
	l.lastSweep = now
}

// clientKey identifies the caller of r by remote host.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
