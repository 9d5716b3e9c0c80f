package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"toolindex-backend/internal/shared/authz"
	"toolindex-backend/internal/shared/response"
)

// RequireRole gates a route group on the caller holding one of the
// allowed roles, resolved live from the profile store.
func RequireRole(guard *authz.Guard, allowed ...authz.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := guard.Authorize(c.Request.Context(), CallerID(c), allowed...)
		if err == nil {
			c.Next()
			return
		}

		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			response.Unauthorized(c, "Authentication required")
		case errors.Is(err, authz.ErrProfileLookupFailed):
			response.ServiceUnavailable(c, "Unable to verify permissions, try again")
		default:
			response.Forbidden(c, "You do not have permission to access this resource")
		}
		c.Abort()
	}
}
