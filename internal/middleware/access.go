package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/response"
)

// RequireModule checks that the authenticated identity may enter the given
// module. Unknown modules and unknown roles deny; the check never errors.
func RequireModule(m access.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		ev := GetEvaluator(c)
		if ev == nil || ev.Identity() == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if !ev.CanAccess(m) {
			response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}

// RequireRoles checks that the identity's role (or its talent projection)
// appears in the list. An empty list permits any authenticated identity.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ev := GetEvaluator(c)
		if ev == nil || ev.Identity() == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if !ev.HasRole(roles...) {
			response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}
