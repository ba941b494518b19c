package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mukunt07/subramaniya-mess/pkg/jwt"
)

// UsernameKey is the context key the authenticated username is stored under.
const UsernameKey = "username"

// AuthMiddleware is the gin handler that guards authenticated routes.
type AuthMiddleware gin.HandlerFunc

// NewAuthMiddleware creates a middleware that validates the Bearer token.
func NewAuthMiddleware(jwtManager *jwt.Manager) AuthMiddleware {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		payload, err := jwtManager.Parse(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		if username, ok := payload[UsernameKey].(string); ok {
			c.Set(UsernameKey, username)
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}
