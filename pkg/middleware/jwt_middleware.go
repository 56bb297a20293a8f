package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"holidayplanner/pkg/utils"
)

const SessionCookie = "session"

type SessionValidator interface {
	ValidateSession(token string) (*utils.Claims, error)
}

// JWTAuthMiddleware accepts a bearer token or the session cookie set at login.
func JWTAuthMiddleware(sessions SessionValidator) gin.HandlerFunc {

	return func(c *gin.Context) {
		tokenString := ""
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := sessions.ValidateSession(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("Role", claims.Role)
		c.Next()
	}
}
