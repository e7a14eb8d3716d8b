package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may make another
// request. When it may not, retryAfter says how long to wait.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// visitorIdleTTL is how long an idle client's bucket is kept.
const visitorIdleTTL = 10 * time.Minute

// MemoryLimiter is a per-client token bucket kept in process memory. Idle
// buckets are pruned lazily during Allow.
type MemoryLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastPrune time.Time
	now       func() time.Time
}

// visitor holds a rate limiter for a specific client
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter allows requestsPerMinute requests per client per minute,
// refilled evenly, with bursts up to the full minute's allowance.
func NewMemoryLimiter(requestsPerMinute int) *MemoryLimiter {
	if requestsPerMinute < 1 {
		requestsPerMinute = 1
	}
	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    requestsPerMinute,
		now:      time.Now,
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.pruneLocked(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	res := v.limiter.ReserveN(now, 1)
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay, nil
	}
	return true, 0, nil
}

// pruneLocked drops idle visitors at most once per visitorIdleTTL.
func (l *MemoryLimiter) pruneLocked(now time.Time) {
	if now.Sub(l.lastPrune) < visitorIdleTTL {
		return
	}
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastPrune = now
}

// size reports the number of tracked clients.
func (l *MemoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// RateLimit rejects requests over the limiter's budget with 429 RATE_LIMITED
// and a Retry-After header. Clients are keyed by remote IP, so chi's RealIP
// middleware must run first when the API sits behind a proxy. A limiter error
// lets the request through.
func RateLimit(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, retryAfter, err := limiter.Allow(r.Context(), clientIP(r))
			if err != nil {
				logger.FromContext(r.Context()).Warn("rate limiter unavailable", redact.Attr(err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests, shared.CodeRateLimited,
					"Too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
