package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"manageme.app/hub/internal/store"
)

type contextKey string

const (
	userHeaderName            = "X-User-ID"
	userContextKey contextKey = "user_id"
)

// RequireUser resolves the caller from the X-User-ID header and attaches
// the id to the request context. There is no session machinery here; the
// dashboard is trusted to send the id of its signed-in user.
func RequireUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userHeaderName)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + userHeaderName + " header"})
			return
		}

		if _, err := users.GetByID(c.Request.Context(), userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserID returns the caller's id attached by RequireUser.
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userContextKey).(string)
	return userID
}
