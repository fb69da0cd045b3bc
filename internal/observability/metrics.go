package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "receiver_api_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	// ReceiverOperations tracks receiver operations by outcome
	ReceiverOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receiver_api_receiver_operations_total",
			Help: "Number of receiver operations",
		},
		[]string{"operation", "status"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receiver_api_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// RateLimitedRequests tracks requests rejected by the rate limiter
	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "receiver_api_rate_limited_requests_total",
			Help: "Number of requests rejected by the rate limiter",
		},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "receiver_api_active_connections",
			Help: "Number of active connections",
		},
	)
)

// RecordOperation counts a receiver operation as success or error
func RecordOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ReceiverOperations.WithLabelValues(operation, status).Inc()
}
