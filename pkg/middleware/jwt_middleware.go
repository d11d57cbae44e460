package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"sadhana/pkg/utils"
)

// JWTAuthMiddleware guards protected routes. A missing or malformed
// Authorization header is rejected with 403, a token that fails verification
// with 401. On success the decoded identity is placed in the request context;
// the account is not re-read from storage, so a role change only takes effect
// once the caller logs in again.
func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusForbidden, "No token provided")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware restricts a route to callers whose token carries requiredRole.
func RoleMiddleware(requiredRole string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString("role")

		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
