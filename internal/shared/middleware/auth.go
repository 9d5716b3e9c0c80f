package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"toolindex-backend/internal/shared/response"
	"toolindex-backend/pkg/jwt"
)

const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "user_email"
)

// AuthMiddleware requires a valid bearer token and stores the caller
// identity in the gin context. Role checks happen later, against the
// profile store, not against token claims.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "Invalid token subject")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// OptionalAuthMiddleware extracts the caller identity when a valid
// token is present and continues anonymously otherwise.
func OptionalAuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		if claims, err := jwtManager.ValidateAccessToken(parts[1]); err == nil {
			if userID, parseErr := uuid.Parse(claims.UserID); parseErr == nil {
				c.Set(ContextUserIDKey, userID)
				c.Set(ContextEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}

// CallerID returns the authenticated caller's id, or nil for
// anonymous requests.
func CallerID(c *gin.Context) *uuid.UUID {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
