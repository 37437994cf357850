package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/criscode097/vacarent/internal/pkg/response"
)

// RequireRole ensures the authenticated user carries the given role claim.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// HostOnly restricts a route to host accounts.
func HostOnly() gin.HandlerFunc {
	return RequireRole("host")
}

// GuestOnly restricts a route to guest accounts.
func GuestOnly() gin.HandlerFunc {
	return RequireRole("guest")
}
