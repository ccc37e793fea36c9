package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestLoginThrottleWindow(t *testing.T) {
	throttle := newLoginThrottle(3, time.Minute)
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	key := "10.0.0.1|ana@x.com"

	for i := 0; i < 3; i++ {
		if throttle.blocked(key, now) {
			t.Fatalf("blocked after %d failures, limit is 3", i)
		}
		throttle.recordFailure(key, now)
	}
	if !throttle.blocked(key, now) {
		t.Fatal("expected block at the failure limit")
	}

	// Failures age out of the window.
	later := now.Add(2 * time.Minute)
	if throttle.blocked(key, later) {
		t.Fatal("expected stale failures to be forgotten")
	}

	throttle.recordFailure(key, later)
	throttle.clear(key)
	if throttle.blocked(key, later) {
		t.Fatal("expected cleared key to be unblocked")
	}
}

func TestLoginThrottleKeysAreIndependent(t *testing.T) {
	throttle := newLoginThrottle(1, time.Minute)
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)

	throttle.recordFailure("10.0.0.1|ana@x.com", now)
	if throttle.blocked("10.0.0.1|bia@x.com", now) {
		t.Fatal("expected other accounts to stay unblocked")
	}
	if throttle.blocked("10.0.0.2|ana@x.com", now) {
		t.Fatal("expected other clients to stay unblocked")
	}
}

func TestLoginBlockedAfterRepeatedFailures(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Ana", "ana@x.com", "p1")

	for i := 0; i < loginFailureLimit; i++ {
		response := doJSON(t, app, http.MethodPost, "/api/login/", "", fiber.Map{
			"email":    "ana@x.com",
			"password": "wrong",
		})
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("failure %d: expected 401, got %d", i, response.StatusCode)
		}
		response.Body.Close()
	}

	response := doJSON(t, app, http.MethodPost, "/api/login/", "", fiber.Map{
		"email":    "ana@x.com",
		"password": "p1",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after %d failures, got %d", loginFailureLimit, response.StatusCode)
	}
}
