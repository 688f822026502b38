package middleware

import (
	"net/http"
	"strings"

	"servicehub_backend/internal/auth"
	"servicehub_backend/internal/models"
	"servicehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the claims in the
// gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("accountStatus", claims.Status)
		c.Next()
	}
}

// AccountStatusGuard short-circuits suspended and deleted accounts with a
// blocking error before any handler runs.
func AccountStatusGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		statusVal, exists := c.Get("accountStatus")
		if !exists {
			c.Next()
			return
		}
		status, ok := statusVal.(models.AccountStatus)
		if !ok {
			if s, isString := statusVal.(string); isString {
				status = models.AccountStatus(s)
			}
		}
		switch status {
		case models.AccountStatusSuspended:
			apperrors.HandleError(c, apperrors.ErrAccountSuspended)
			c.Abort()
		case models.AccountStatusDeleted:
			apperrors.HandleError(c, apperrors.ErrAccountDeleted)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireRoles allows the request through only for the listed roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid role type"})
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}

		c.Next()
	}
}
