package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces rate limit counters.
const DefaultKeyPrefix = "ratelimit"

// incrWindow increments the counter for the current window and sets its
// expiry on first use, atomically.
var incrWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// FixedWindowLimiter counts requests per client in fixed windows stored in
// Redis. A client may make limit requests per window.
type FixedWindowLimiter struct {
	rdb    redis.Scripter
	limit  int64
	window time.Duration
	prefix string
	now    func() time.Time
}

// NewFixedWindowLimiter allows limit requests per window per client.
func NewFixedWindowLimiter(rdb redis.Scripter, limit int, window time.Duration) *FixedWindowLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{
		rdb:    rdb,
		limit:  int64(limit),
		window: window,
		prefix: DefaultKeyPrefix,
		now:    time.Now,
	}
}

// Allow records one request for key. When the window's budget is spent it
// returns false and the time left until the next window opens.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := l.now()
	start := now.Truncate(l.window)

	count, err := incrWindow.Run(ctx, l.rdb, []string{l.windowKey(key, start)}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit counter: %w", err)
	}

	if count > l.limit {
		return false, start.Add(l.window).Sub(now), nil
	}
	return true, 0, nil
}

func (l *FixedWindowLimiter) windowKey(key string, start time.Time) string {
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, start.Unix())
}
