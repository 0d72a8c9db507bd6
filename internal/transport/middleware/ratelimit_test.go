package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func hit(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)
	h := rl.Limit(3)(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code, "request %d", i)
	}

	rec := hit(h, "10.0.0.1:5678")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "21", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":{"kind":"rate_limited","message":"rate limit exceeded"}}`, rec.Body.String())
}

func TestRateLimit_PerClientIP(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)
	h := rl.Limit(1)(okHandler)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:2").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)
	h := rl.Limit(0)(okHandler)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	}
}

func TestBucket_Refills(t *testing.T) {
	t.Parallel()

	now := time.Now()
	b := &bucket{tokens: 0, capacity: 60, perSecond: 1, lastRefill: now}
	assert.False(t, b.take(now))
	assert.True(t, b.take(now.Add(1500*time.Millisecond)))
	assert.False(t, b.take(now.Add(1500*time.Millisecond)))
}

func TestRateLimiter_StopTwice(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Millisecond)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
