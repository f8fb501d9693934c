package middleware

import (
	"net/http"
	"strings"

	"docportal/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the verified token email lands in the gin context.
const ContextEmailKey = "tokenEmail"

// JWTAuthMiddleware verifies the bearer token and stores its email claim in
// the context. A missing token is unauthorized; a token that fails
// verification is forbidden.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// TokenEmail returns the verified email set by JWTAuthMiddleware.
func TokenEmail(c *gin.Context) (string, bool) {
	val, ok := c.Get(ContextEmailKey)
	if !ok {
		return "", false
	}
	email, ok := val.(string)
	return email, ok && email != ""
}
