package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/transfeera/receiver-api/internal/config"
	"github.com/transfeera/receiver-api/internal/handlers"
	"github.com/transfeera/receiver-api/internal/logging"
	"github.com/transfeera/receiver-api/internal/middleware"
	"github.com/transfeera/receiver-api/internal/repository"
	"github.com/transfeera/receiver-api/internal/services"

	_ "github.com/transfeera/receiver-api/docs"
)

type routerDeps struct {
	repo             repository.ReceiverRepository
	rateLimitCounter middleware.WindowCounter
	redisPinger      handlers.RedisPinger
}

// newRouter wires the middleware chain and every route
func newRouter(cfg *config.Config, deps routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.SecurityHeaders(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	receiverService := services.NewReceiverService(deps.repo, logging.Logger)
	receiverHandlers := handlers.NewReceiverHandlers(logging.Logger, receiverService)
	healthHandlers := handlers.NewHealthHandlers(logging.Logger, receiverService, deps.redisPinger)

	var limiter gin.HandlerFunc
	if cfg.RateLimitEnabled && deps.rateLimitCounter != nil {
		limiter = middleware.RateLimit(deps.rateLimitCounter, cfg.RateLimitRequests, cfg.RateLimitWindow)
	} else {
		limiter = func(c *gin.Context) { c.Next() }
	}

	// API v1 routes
	v1 := router.Group("/v1", middleware.ContentSecurityPolicy())
	{
		v1.GET("/health", healthHandlers.HealthCheck)
		receiverHandlers.RegisterRoutes(v1.Group("", limiter))
	}

	// Swagger documentation
	if cfg.IsDevelopment() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}
