package middleware

import (
	"context"
	"fmt"

	"ajans99-backend/config"
	"ajans99-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionAuth resolves the signed session cookie into a user ID on the
// request context. A missing or invalid session is not an error: the
// dashboard endpoints respond with null for anonymous visitors.
func SessionAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie("session")
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.AuthSecret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		// Session claims look like {"user":{"id":1},"expires":"..."}.
		userClaim, ok := claims["user"].(map[string]interface{})
		if !ok {
			c.Next()
			return
		}
		idFloat, ok := userClaim["id"].(float64)
		if !ok {
			c.Next()
			return
		}

		userID := int64(idFloat)
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(domain.KeyUserID), userID)

		c.Next()
	}
}
