package middleware

import (
	"ajans99-backend/config"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured frontend plus localhost during
// development to call the API with credentials.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := map[string]bool{
		cfg.FrontendURL:         true,
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Same-origin requests carry no Origin header.
		if origin == "" || allowed[origin] {
			if origin != "" {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Requested-With")
				c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			}
			c.Header("Vary", "Origin")
			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}
			c.Next()
			return
		}

		c.Header("Vary", "Origin")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(403)
			return
		}
		c.Next()
	}
}
