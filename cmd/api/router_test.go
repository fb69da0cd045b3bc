package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transfeera/receiver-api/internal/config"
	"github.com/transfeera/receiver-api/internal/testutil"
	"github.com/transfeera/receiver-api/internal/utils"
)

type blockingCounter struct{}

func (blockingCounter) Incr(context.Context, string) *redis.IntCmd {
	return redis.NewIntResult(1000, nil)
}

func (blockingCounter) Expire(context.Context, string, time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

func (blockingCounter) TTL(context.Context, string) *redis.DurationCmd {
	return redis.NewDurationResult(30*time.Second, nil)
}

func testConfig(environment string) *config.Config {
	return &config.Config{
		Port:              8080,
		Environment:       environment,
		RateLimitRequests: 10,
		RateLimitWindow:   time.Minute,
	}
}

func setupRouter(t *testing.T, cfg *config.Config, deps routerDeps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, utils.RegisterValidators())
	if deps.repo == nil {
		repo := testutil.NewMemoryReceiverRepository()
		testutil.SeedReceivers(repo, 12)
		deps.repo = repo
	}
	return newRouter(cfg, deps)
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewRouter_Routes(t *testing.T) {
	router := setupRouter(t, testConfig(config.EnvironmentDevelopment), routerDeps{})

	tests := []struct {
		path   string
		status int
	}{
		{"/v1/health", http.StatusOK},
		{"/v1/receiver", http.StatusOK},
		{"/v1/receiver?page=2", http.StatusOK},
		{"/v1/receiver?page=3", http.StatusPreconditionFailed},
		{"/v1/receiver/1", http.StatusOK},
		{"/v1/receiver/100", http.StatusNotFound},
		{"/metrics", http.StatusOK},
		{"/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.status, get(router, tt.path).Code)
		})
	}
}

func TestNewRouter_Headers(t *testing.T) {
	router := setupRouter(t, testConfig(config.EnvironmentDevelopment), routerDeps{})

	w := get(router, "/v1/receiver/1")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))

	w = get(router, "/metrics")
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}

func TestNewRouter_SwaggerOnlyInDevelopment(t *testing.T) {
	dev := setupRouter(t, testConfig(config.EnvironmentDevelopment), routerDeps{})
	assert.Equal(t, http.StatusOK, get(dev, "/swagger/doc.json").Code)

	prod := setupRouter(t, testConfig(config.EnvironmentProduction), routerDeps{})
	assert.Equal(t, http.StatusNotFound, get(prod, "/swagger/doc.json").Code)
}

func TestNewRouter_RateLimit(t *testing.T) {
	cfg := testConfig(config.EnvironmentProduction)
	cfg.RateLimitEnabled = true
	router := setupRouter(t, cfg, routerDeps{rateLimitCounter: blockingCounter{}})

	req, _ := http.NewRequest(http.MethodDelete, "/v1/receiver/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// reads and the health check are never limited
	assert.Equal(t, http.StatusOK, get(router, "/v1/receiver/1").Code)
	assert.Equal(t, http.StatusOK, get(router, "/v1/health").Code)
}

func TestNewRouter_RateLimitDisabled(t *testing.T) {
	router := setupRouter(t, testConfig(config.EnvironmentProduction), routerDeps{rateLimitCounter: blockingCounter{}})

	req, _ := http.NewRequest(http.MethodDelete, "/v1/receiver/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
