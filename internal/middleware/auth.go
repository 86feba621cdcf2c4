package middleware

import (
	"context"
	"net/http"
	"strings"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionValidator resolves an opaque bearer token to an active session.
type SessionValidator interface {
	ValidateSession(ctx context.Context, raw string) (*domain.Session, error)
}

// SessionAuth guards routes behind a valid server-side session. On success
// the session identity is placed in the request context under user_id,
// username and role.
func SessionAuth(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if raw == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		session, err := sessions.ValidateSession(c.Request.Context(), raw)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		c.Set("user_id", session.UserID)
		c.Set("username", session.Username)
		c.Set("role", string(session.Role))

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
	c.Abort()
}
