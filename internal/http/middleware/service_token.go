package middleware

import (
	"net/http"

	"github.com/Uchencho/Bar-Zubi/internal/auth"
	"github.com/Uchencho/Bar-Zubi/internal/utils"
	"github.com/gin-gonic/gin"
)

// ServiceTokenHeader carries the static deployment secret. Kept off the
// Authorization header so the service tier can never be confused with a
// signed bearer token.
const ServiceTokenHeader = "X-Service-Token"

// ServiceRequired gates registration and login on the shared service
// secret.
func ServiceRequired(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.CheckServiceAuth(c.GetHeader(ServiceTokenHeader)) {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid service token", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}
