package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitboard/internal/infrastructure/security"
)

const (
	// ContextParticipant is the gin context key for the caller's id.
	ContextParticipant = "participant"
	// ContextDisplayName is the gin context key for the caller's name claim.
	ContextDisplayName = "displayName"
)

func Auth(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		identity, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextParticipant, identity.Participant)
		c.Set(ContextDisplayName, identity.Name)

		c.Next()
	}
}

// AdminOnly gates a route on the configured admin allowlist. Runs after
// Auth.
func AdminOnly(admins map[string]struct{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		participant := c.GetString(ContextParticipant)
		if _, ok := admins[participant]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
