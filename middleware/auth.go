package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cuthours/utils"
)

// AuthRequired rejects requests without a valid full access token and puts
// user_id and email into the context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if !ok {
			return
		}
		if claims.Partial {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Two-factor verification required"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// PartialAuthAllowed accepts both full and partial tokens. Used only by the
// TOTP verify endpoint, which sits between password and 2FA check.
func PartialAuthAllowed(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if !ok {
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func bearerClaims(c *gin.Context, secret string) (*utils.Claims, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return nil, false
	}
	claims, err := utils.ParseToken(secret, token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return nil, false
	}
	return claims, true
}
