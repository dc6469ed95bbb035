package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSTestRouter(allowedDomains []string, environment string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ConfigCORS(allowedDomains, environment))
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func allowedOrigin(t *testing.T, router *gin.Engine, origin string) bool {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", origin)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	return resp.Header().Get("Access-Control-Allow-Origin") != ""
}

func TestConfigCORS(t *testing.T) {
	allowed := []string{"https://shop.example.com"}

	tests := []struct {
		name        string
		environment string
		origin      string
		want        bool
	}{
		{name: "allowlisted origin", environment: "production", origin: "https://shop.example.com", want: true},
		{name: "unlisted origin", environment: "production", origin: "https://evil.example", want: false},
		{name: "origin embedding an allowlisted domain", environment: "production", origin: "https://shop.example.com.evil.example", want: false},
		{name: "localhost lookalike host", environment: "development", origin: "http://localhost:3000.evil.example", want: false},
		{name: "localhost in development", environment: "development", origin: "http://localhost:3000", want: true},
		{name: "loopback in development", environment: "development", origin: "http://127.0.0.1:5173", want: true},
		{name: "localhost in production", environment: "production", origin: "http://localhost:3000", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCORSTestRouter(allowed, tt.environment)

			assert.Equal(t, tt.want, allowedOrigin(t, router, tt.origin))
		})
	}
}
