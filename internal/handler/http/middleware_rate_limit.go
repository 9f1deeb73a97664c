package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/utils"
)

const (
	limiterIdleTTL       = time.Hour
	limiterSweepInterval = 5 * time.Minute
)

// ipRateLimiter keeps one token bucket per client IP. Idle buckets are
// swept lazily from allow, so no background goroutine is needed.
type ipRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*ipLimiterEntry
	rps       float64
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

type ipLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters:  make(map[string]*ipLimiterEntry),
		rps:       rps,
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// allow reports whether ip may proceed and, if not, how long it should wait.
func (l *ipRateLimiter) allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		l.sweep(now)
	}

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipLimiterEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastAccess = now

	if entry.limiter.AllowN(now, 1) {
		return true, 0
	}

	reservation := entry.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	reservation.CancelAt(now)

	return false, delay
}

func (l *ipRateLimiter) sweep(now time.Time) {
	threshold := now.Add(-limiterIdleTTL)
	for ip, entry := range l.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := clientIPFromRequest(r)

		allowed, delay := h.limiter.allow(clientIP)
		if !allowed {
			retryAfter := int(delay.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			logger.FromRequest(r).Debug().
				Str("client_ip", clientIP).
				Int("retry_after", retryAfter).
				Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			utils.WriteText(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIPFromRequest strips the port from RemoteAddr, which middleware.RealIP
// has already replaced with X-Forwarded-For / X-Real-IP when present.
func clientIPFromRequest(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
