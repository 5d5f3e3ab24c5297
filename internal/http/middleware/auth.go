package middleware

import (
	"net/http"
	"strings"

	"github.com/Uchencho/Bar-Zubi/internal/auth"
	"github.com/Uchencho/Bar-Zubi/internal/utils"
	"github.com/gin-gonic/gin"
)

// ContextUsername is the gin context key carrying the authenticated
// token subject.
const ContextUsername = "username"

// UserRequired gates a route on a valid signed access token in the
// Authorization header. Every validation failure collapses to 401.
func UserRequired(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing token", nil))
			c.Abort()
			return
		}

		username, err := sessions.CheckAuth(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil))
			c.Abort()
			return
		}

		c.Set(ContextUsername, username)
		c.Next()
	}
}

// AdminRequired additionally requires the token subject's account to be a
// superuser. Part of the session manager's contract; no route mounts it
// on the current surface.
func AdminRequired(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing token", nil))
			c.Abort()
			return
		}

		username, err := sessions.CheckAdminAuth(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil))
			c.Abort()
			return
		}

		c.Set(ContextUsername, username)
		c.Next()
	}
}
