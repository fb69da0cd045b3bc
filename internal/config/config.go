package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Collection names
	ReceiverCollection string `json:"mongo_receiver_collection"`
	CounterCollection  string `json:"mongo_counter_collection"`

	// Redis configuration
	RedisURI      string `json:"redis_uri"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Rate limiting of write requests
	RateLimitEnabled  bool          `json:"rate_limit_enabled"`
	RateLimitRequests int           `json:"rate_limit_requests"`
	RateLimitWindow   time.Duration `json:"rate_limit_window"`

	// Tracing configuration
	TracingEnabled     bool    `json:"tracing_enabled"`
	TracingEndpoint    string  `json:"tracing_endpoint"`
	TracingInsecure    bool    `json:"tracing_insecure"`
	TracingSampleRatio float64 `json:"tracing_sample_ratio"`
	ServiceVersion     string  `json:"service_version"`
}

var (
	AppConfig *Config
)

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

// LoadConfig loads configuration from a .env file, if present, and the environment
func LoadConfig() error {
	// a missing .env is fine, real environment variables take precedence
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid PORT: %d must be between 0 and 65535", port)
	}

	environment := getEnvOrDefault("ENVIRONMENT", EnvironmentDevelopment)
	if environment != EnvironmentDevelopment && environment != EnvironmentProduction {
		return fmt.Errorf("invalid ENVIRONMENT: %q must be %s or %s", environment, EnvironmentDevelopment, EnvironmentProduction)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	rateLimitEnabled, err := strconv.ParseBool(getEnvOrDefault("RATE_LIMIT_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_ENABLED: %w", err)
	}

	rateLimitRequests, err := strconv.Atoi(getEnvOrDefault("RATE_LIMIT_REQUESTS", "60"))
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
	}
	if rateLimitRequests < 1 {
		return fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %d must be positive", rateLimitRequests)
	}

	rateLimitWindow, err := time.ParseDuration(getEnvOrDefault("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	if rateLimitWindow < time.Second {
		return fmt.Errorf("invalid RATE_LIMIT_WINDOW: %s must be at least 1s", rateLimitWindow)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	tracingInsecure, err := strconv.ParseBool(getEnvOrDefault("TRACING_INSECURE", "true"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_INSECURE: %w", err)
	}

	tracingSampleRatio, err := strconv.ParseFloat(getEnvOrDefault("TRACING_SAMPLE_RATIO", "1"), 64)
	if err != nil {
		return fmt.Errorf("invalid TRACING_SAMPLE_RATIO: %w", err)
	}
	if tracingSampleRatio < 0 || tracingSampleRatio > 1 {
		return fmt.Errorf("invalid TRACING_SAMPLE_RATIO: %g must be between 0 and 1", tracingSampleRatio)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: environment,

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "receivers"),

		// Collection names
		ReceiverCollection: getEnvOrDefault("MONGODB_RECEIVER_COLLECTION", "receivers"),
		CounterCollection:  getEnvOrDefault("MONGODB_COUNTER_COLLECTION", "counters"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "redis://localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		// Rate limiting
		RateLimitEnabled:  rateLimitEnabled,
		RateLimitRequests: rateLimitRequests,
		RateLimitWindow:   rateLimitWindow,

		// Tracing configuration
		TracingEnabled:     tracingEnabled,
		TracingEndpoint:    getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
		TracingInsecure:    tracingInsecure,
		TracingSampleRatio: tracingSampleRatio,
		ServiceVersion:     getEnvOrDefault("SERVICE_VERSION", "dev"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
