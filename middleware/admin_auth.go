package middleware

import (
	"net/http"

	userService "docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireAdmin gates a route on the caller's account holding the admin role.
// It must run after JWTAuthMiddleware: authentication first, then the role
// predicate, each denying with its own reason.
func RequireAdmin(users userService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := TokenEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		isAdmin, err := users.IsAdmin(email)
		if err != nil {
			utils.GetLogger().Error("admin role lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}

		c.Next()
	}
}
