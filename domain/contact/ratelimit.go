package contact

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimiter rate limits submissions per client address.
type ClientLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewClientLimiter(perMinute, burst int) *ClientLimiter {
	return &ClientLimiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
		limiters: make(map[string]*clientLimiter),
	}
}

// Allow reports whether client may submit now.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cl, ok := l.limiters[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[client] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Forget drops limiters idle for longer than idle.
func (l *ClientLimiter) Forget(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for client, cl := range l.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(l.limiters, client)
			removed++
		}
	}
	return removed
}
