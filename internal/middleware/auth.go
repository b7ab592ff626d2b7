package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gearmart-be/internal/user"
)

// Gin context keys set by RequireAuth.
const (
	UserIDKey = "userID"
	EmailKey  = "userEmail"
	RoleKey   = "userRole"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity in the gin context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get(RoleKey); role != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID, or 0 when the request is
// anonymous.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// Role returns the authenticated user's role, or the empty string.
func Role(c *gin.Context) string {
	if v, ok := c.Get(RoleKey); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
