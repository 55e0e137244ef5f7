package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cuthours/services"
	"cuthours/utils"
)

// RateLimit throttles anonymous endpoints per client IP.
func RateLimit(limiter *services.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), utils.ClientIP(c.Request)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
