package ingest

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// hostLimiter paces registrations per source host, so a batch dominated by
// one site drains evenly when the upstream discovery feed is throttled.
type hostLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
}

func newHostLimiter(requestsPerSecond float64, burst int) *hostLimiter {
	if burst <= 0 {
		burst = 5
	}
	return &hostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// wait blocks until the host's limiter clears or the context is done.
// Unparseable URLs share the empty-host limiter rather than failing:
// malformed metadata still gets registered.
func (l *hostLimiter) wait(ctx context.Context, rawURL string) error {
	host := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		host = parsed.Host
	}

	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
