package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental-sim/logger"
)

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(2, time.Minute, func() time.Time { return now })

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	ok, retryAfter := limiter.Allow("10.0.0.1")
	if ok {
		t.Fatalf("third request should be limited")
	}
	if retryAfter != time.Minute {
		t.Errorf("expected retry after 1m, got %v", retryAfter)
	}

	if ok, _ := limiter.Allow("10.0.0.2"); !ok {
		t.Errorf("other clients have their own bucket")
	}

	now = now.Add(time.Minute)
	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Errorf("bucket should refill after the window")
	}
}

func TestRateLimitMiddleware(t *testing.T) {

	limiter := newRateLimiter(1, time.Minute, time.Now)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(limiter, logger.Discard(), next)

	req := httptest.NewRequest(http.MethodPost, "/simulation/run", nil)
	req.RemoteAddr = "192.0.2.1:1234"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Errorf("expected Retry-After header")
	}
}
