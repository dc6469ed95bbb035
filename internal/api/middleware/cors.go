package middleware

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS compares full origins against the configured allowlist.
// Substring matching would wave through origins like
// http://localhost:3000.evil.example, so the localhost convenience is an
// exact-host check and only outside production.
func ConfigCORS(allowedDomains []string, environment string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			for _, domain := range allowedDomains {
				if strings.EqualFold(origin, domain) {
					return true
				}
			}

			return environment != "production" && isLocalhost(origin)
		},
		MaxAge: 12 * time.Hour,
	})
}

func isLocalhost(origin string) bool {
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}

	hostname := parsed.Hostname()

	return hostname == "localhost" || hostname == "127.0.0.1"
}
