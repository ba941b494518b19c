package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mukunt07/subramaniya-mess/internal/limiter"
)

// CreateRateLimitMiddleware is a generator function that creates a rate-limiting middleware for a specific policy.
// Requests are keyed by client IP: the POS runs on a handful of counter
// devices, so per-IP buckets are per-terminal buckets.
func CreateRateLimitMiddleware(limiterManager *limiter.Manager, policyName string) gin.HandlerFunc {
	// Get the specific limiter for the policy once.
	policyLimiter := limiterManager.Get(policyName)

	return func(c *gin.Context) {
		allowed, err := policyLimiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"code":    http.StatusInternalServerError,
				"message": "failed to check rate limit",
			})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  "error",
				"code":    http.StatusTooManyRequests,
				"message": "too many requests",
			})
			return
		}
		c.Next()
	}
}
