package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/transfeera/receiver-api/internal/config"
	"github.com/transfeera/receiver-api/internal/logging"
	"github.com/transfeera/receiver-api/internal/observability"
	"github.com/transfeera/receiver-api/internal/repository"
	"github.com/transfeera/receiver-api/internal/utils"
	"go.uber.org/zap"
)

// @title           Receiver API
// @version         1.0
// @description     API for managing PIX receivers. Receivers are created as drafts (Rascunho); once validated (Validado) only their email can change.

// @contact.name   API Support
// @contact.email  suporte@transfeera.com

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /v1

// @tag.name Receivers
// @tag.description PIX receiver management

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logging.Sync()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	if err := config.InitMongoDB(); err != nil {
		logging.Logger.Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		config.CloseMongoDB(ctx)
	}()

	var deps routerDeps
	if config.AppConfig.RateLimitEnabled {
		if err := config.InitRedis(); err != nil {
			// the limiter fails open, so a missing Redis only disables it
			logging.Logger.Error("rate limiting disabled, redis unavailable", zap.Error(err))
		} else {
			deps.rateLimitCounter = config.Redis
			deps.redisPinger = config.Redis
			defer config.Redis.Close()
		}
	}

	if err := utils.RegisterValidators(); err != nil {
		logging.Logger.Fatal("failed to register validators", zap.Error(err))
	}

	// Set Gin mode
	if config.AppConfig.Environment == config.EnvironmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	deps.repo = repository.NewMongoReceiverRepository(
		config.MongoDB,
		config.AppConfig.ReceiverCollection,
		config.AppConfig.CounterCollection,
	)
	router := newRouter(config.AppConfig, deps)

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logging.Logger.Info("server exited gracefully")
}
