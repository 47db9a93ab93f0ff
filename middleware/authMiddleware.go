package middleware

import (
	"net/http"
	"strings"

	"github.com/YusifQasim/caffe-backend/helpers"

	"github.com/gin-gonic/gin"
)

// Authentication gates the admin routes: 401 when no token was sent, 403 when
// the token fails verification or has expired. No handler runs on failure.
func Authentication(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.GetHeader("Authorization")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization token is required"})
			c.Abort()
			return
		}
		clientToken = strings.TrimPrefix(clientToken, "Bearer ")

		claims, err := helpers.ValidateToken(clientToken, secret)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("username", claims.Username)
		c.Next()
	}
}
