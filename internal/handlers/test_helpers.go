package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/transfeera/receiver-api/internal/services"
	"github.com/transfeera/receiver-api/internal/testutil"
	"github.com/transfeera/receiver-api/internal/utils"
)

var registerValidatorsOnce sync.Once

// setupTestRouter creates a router serving the receiver routes over an
// in-memory repository seeded with n receivers
func setupTestRouter(t *testing.T, seeded int) (*gin.Engine, *testutil.MemoryReceiverRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registerValidatorsOnce.Do(func() {
		require.NoError(t, utils.RegisterValidators())
	})

	repo := testutil.NewMemoryReceiverRepository()
	testutil.SeedReceivers(repo, seeded)

	router := gin.New()
	v1 := router.Group("/v1")
	NewReceiverHandlers(nil, services.NewReceiverService(repo, nil)).RegisterRoutes(v1)
	return router, repo
}

// performRequest sends a request with an optional JSON body
func performRequest(router http.Handler, method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, url, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeError parses an ErrorResponse body
func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
