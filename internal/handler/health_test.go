package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		pinger   Pinger
		status   int
		health   string
		database string
	}{
		{"happy: database reachable", fakePinger{}, http.StatusOK, "healthy", "connected"},
		{"bad: database down", fakePinger{err: errPingFailed}, http.StatusServiceUnavailable, "unhealthy", "disconnected"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthHandler(tc.pinger).Health)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/health", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.health, resp["status"])
			assert.Equal(t, tc.database, resp["database"])
		})
	}
}
