package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// fakeCounter is an in-memory WindowCounter
type fakeCounter struct {
	mu      sync.Mutex
	counts  map[string]int64
	expires map[string]time.Duration
	ttls    map[string]time.Duration
	err     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: make(map[string]int64), expires: make(map[string]time.Duration), ttls: make(map[string]time.Duration)}
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

// TTL reports the configured ttl for key, or the expiration set on it
func (f *fakeCounter) TTL(_ context.Context, key string) *redis.DurationCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ttl, ok := f.ttls[key]; ok {
		return redis.NewDurationResult(ttl, nil)
	}
	if exp, ok := f.expires[key]; ok {
		return redis.NewDurationResult(exp, nil)
	}
	return redis.NewDurationResult(-2, nil)
}

func newRateLimitedRouter(counter WindowCounter, limit int) *gin.Engine {
	router := gin.New()
	router.Use(RateLimit(counter, limit, time.Hour))
	router.GET("/v1/receiver", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/v1/receiver", func(c *gin.Context) { c.Status(http.StatusCreated) })
	router.DELETE("/v1/receiver/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	req.RemoteAddr = "203.0.113.7:41000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksWritesOverLimit(t *testing.T) {
	counter := newFakeCounter()
	router := newRateLimitedRouter(counter, 2)

	assert.Equal(t, http.StatusCreated, doRequest(router, "POST", "/v1/receiver").Code)
	w := doRequest(router, "DELETE", "/v1/receiver/1")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = doRequest(router, "POST", "/v1/receiver")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too Many Requests")
}

func TestRateLimit_RetryAfterFromKeyTTL(t *testing.T) {
	counter := newFakeCounter()
	counter.ttls["ratelimit:203.0.113.7"] = 1500 * time.Millisecond
	router := newRateLimitedRouter(counter, 1)

	doRequest(router, "POST", "/v1/receiver")
	w := doRequest(router, "POST", "/v1/receiver")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
}

func TestRateLimit_RestoresMissingExpiry(t *testing.T) {
	counter := newFakeCounter()
	counter.ttls["ratelimit:203.0.113.7"] = -1
	router := newRateLimitedRouter(counter, 1)

	doRequest(router, "POST", "/v1/receiver")
	delete(counter.expires, "ratelimit:203.0.113.7")
	w := doRequest(router, "POST", "/v1/receiver")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))
	assert.Equal(t, time.Hour, counter.expires["ratelimit:203.0.113.7"])
}

func TestRateLimit_ReadsAreNotCounted(t *testing.T) {
	counter := newFakeCounter()
	router := newRateLimitedRouter(counter, 1)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/v1/receiver").Code)
	}
	assert.Empty(t, counter.counts)

	assert.Equal(t, http.StatusCreated, doRequest(router, "POST", "/v1/receiver").Code)
}

func TestRateLimit_SetsWindowExpiration(t *testing.T) {
	counter := newFakeCounter()
	router := newRateLimitedRouter(counter, 10)

	doRequest(router, "POST", "/v1/receiver")
	doRequest(router, "POST", "/v1/receiver")

	assert.Len(t, counter.expires, 1)
	for _, exp := range counter.expires {
		assert.Equal(t, time.Hour, exp)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	counter := newFakeCounter()
	counter.err = errors.New("connection refused")
	router := newRateLimitedRouter(counter, 1)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusCreated, doRequest(router, "POST", "/v1/receiver").Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	router := newRateLimitedRouter(nil, 1)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusCreated, doRequest(router, "POST", "/v1/receiver").Code)
	}
}
