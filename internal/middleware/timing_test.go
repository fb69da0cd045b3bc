package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	return recorder
}

func TestRequestTiming_CreatesSpan(t *testing.T) {
	recorder := setupTestTracer(t)

	router := gin.New()
	router.Use(RequestID(), RequestTiming())

	var spanInHandler trace.SpanContext
	router.GET("/v1/receiver/:id", func(c *gin.Context) {
		spanInHandler = trace.SpanContextFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/v1/receiver/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, spanInHandler.IsValid())

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "http.request", spans[0].Name())
	assert.Equal(t, spanInHandler.SpanID(), spans[0].SpanContext().SpanID())

	attrs := make(map[string]string)
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "GET", attrs["http.method"])
	assert.Equal(t, "/v1/receiver/:id", attrs["http.route"])
	assert.Equal(t, "200", attrs["http.status_code"])
	assert.NotEmpty(t, attrs["http.request_id"])
}

func TestRequestTiming_MarksErrors(t *testing.T) {
	recorder := setupTestTracer(t)

	router := gin.New()
	router.Use(RequestTiming())
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req, _ := http.NewRequest("GET", "/fail", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	found := false
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "http.error" {
			found = true
			assert.Equal(t, "true", kv.Value.AsString())
		}
	}
	assert.True(t, found)
}
