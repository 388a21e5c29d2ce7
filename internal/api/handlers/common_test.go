package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/songcraft-labs/songcraft-api/internal/config"
	"github.com/songcraft-labs/songcraft-api/internal/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		Port:           "8080",
		DefaultKey:     "C",
		AllowedOrigins: "*",
	}
}

// testMetrics returns a disabled CloudWatch client; nothing reaches AWS
// outside production.
func testMetrics(t *testing.T) *metrics.Client {
	t.Helper()
	client, err := metrics.NewClient(context.Background(), "test")
	require.NoError(t, err)
	return client
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func init() {
	gin.SetMode(gin.TestMode)
}
