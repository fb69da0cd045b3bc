package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/transfeera/receiver-api/internal/utils"
	"go.uber.org/zap"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Pinger is a dependency that can be checked for reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// RedisPinger is the Redis command used by the health check
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// HealthResponse reports the state of the API and its dependencies
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthHandlers serves the health endpoint
type HealthHandlers struct {
	logger *zap.Logger
	store  Pinger
	redis  RedisPinger
}

// NewHealthHandlers creates the health handlers. redisClient may be nil when
// rate limiting is disabled.
func NewHealthHandlers(logger *zap.Logger, store Pinger, redisClient RedisPinger) *HealthHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandlers{logger: logger.Named("health"), store: store, redis: redisClient}
}

// HealthCheck godoc
// @Summary Health check
// @Description Checks the API and its dependencies. Redis is only reported when rate limiting is enabled.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Every dependency is healthy"
// @Failure 503 {object} HealthResponse "At least one dependency is unavailable"
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	ctx, span, cleanup := utils.TraceBusinessLogic(c.Request.Context(), "health_check")
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	health := HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC(),
		Services:  make(map[string]string),
	}

	if err := h.store.Ping(ctx); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"service.name": "mongodb"})
		h.logger.Warn("mongodb health check failed", zap.Error(err))
		health.Status = statusUnhealthy
		health.Services["mongodb"] = statusUnhealthy
	} else {
		health.Services["mongodb"] = statusHealthy
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			utils.RecordErrorInSpan(span, err, map[string]interface{}{"service.name": "redis"})
			h.logger.Warn("redis health check failed", zap.Error(err))
			health.Status = statusUnhealthy
			health.Services["redis"] = statusUnhealthy
		} else {
			health.Services["redis"] = statusHealthy
		}
	}

	utils.AddSpanAttribute(span, "health.status", health.Status)

	if health.Status == statusHealthy {
		c.JSON(http.StatusOK, health)
		return
	}
	c.JSON(http.StatusServiceUnavailable, health)
}
