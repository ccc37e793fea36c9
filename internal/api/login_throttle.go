package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	loginFailureLimit  = 10
	loginFailureWindow = 5 * time.Minute
)

// loginThrottle tracks recent failed logins per client+account pair so
// password guessing gets slowed down. State is in-memory only and resets
// with the process.
type loginThrottle struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	failures map[string][]time.Time
}

func newLoginThrottle(limit int, window time.Duration) *loginThrottle {
	return &loginThrottle{
		limit:    limit,
		window:   window,
		failures: make(map[string][]time.Time),
	}
}

func (throttle *loginThrottle) blocked(key string, now time.Time) bool {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	return len(throttle.pruneLocked(key, now)) >= throttle.limit
}

func (throttle *loginThrottle) recordFailure(key string, now time.Time) {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	throttle.failures[key] = append(throttle.pruneLocked(key, now), now)
}

func (throttle *loginThrottle) clear(key string) {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	delete(throttle.failures, key)
}

func (throttle *loginThrottle) pruneLocked(key string, now time.Time) []time.Time {
	recorded := throttle.failures[key]
	if len(recorded) == 0 {
		return nil
	}

	threshold := now.Add(-throttle.window)
	kept := make([]time.Time, 0, len(recorded))
	for _, at := range recorded {
		if at.After(threshold) {
			kept = append(kept, at)
		}
	}

	if len(kept) == 0 {
		delete(throttle.failures, key)
		return nil
	}
	throttle.failures[key] = kept
	return kept
}

func loginThrottleKey(c *fiber.Ctx, email string) string {
	ip := strings.TrimSpace(c.IP())
	if ip == "" {
		ip = "unknown"
	}
	return ip + "|" + email
}
