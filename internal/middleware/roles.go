package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskmaster-api/internal/errors"
	"github.com/yukikurage/taskmaster-api/internal/models"
)

// RequireRoles lets the request through only when the session role is one of allowed.
// A missing role is treated as unauthenticated.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok || role == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !slices.Contains(allowed, role) {
			apierrors.InsufficientPermissions(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
