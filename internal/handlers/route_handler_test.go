package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/servicehub/marketplace-api/internal/config"
	"github.com/servicehub/marketplace-api/internal/domain/routing"
)

func routeTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// sem token válido o handler nunca toca o banco
	h := NewRouteHandler(nil, &config.Config{JWTSecret: "test-secret"})

	r := gin.New()
	r.GET("/api/route", h.Resolve)
	return r
}

func TestRouteHandler_NoToken(t *testing.T) {
	r := routeTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/route", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var decision routing.Decision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decision))
	require.Equal(t, routing.DestinationPlaceholder, decision.Destination)
	require.Empty(t, decision.Tabs)
}

func TestRouteHandler_InvalidToken(t *testing.T) {
	r := routeTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong scheme", "Token abcdef"},
		{"empty bearer", "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/route", nil)
			req.Header.Set("Authorization", tt.header)
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var decision routing.Decision
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decision))
			require.Equal(t, routing.DestinationPlaceholder, decision.Destination)
		})
	}
}
