package jwtmw

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"notes_backend/internal/platform/http/respond"
	"notes_backend/internal/shared/apperr"
)

const ContextUserID = "userID"

// ErrNotLoggedIn is returned when a request carries no bearer token.
var ErrNotLoggedIn = apperr.New(apperr.KindUnauthorized, "not logged in")

// AuthRequired returns a Gin middleware that validates bearer tokens and
// restricts access to authenticated users only. On success the verified
// user ID is stored in the request context under ContextUserID.
func AuthRequired(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			respond.AbortError(c, ErrNotLoggedIn)
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature, expiry and subject
		userID, err := tokens.VerifyToken(tokenStr)
		if err != nil {
			respond.AbortError(c, err)
			return
		}

		// 3. Expose the caller's identity to downstream handlers
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID set by AuthRequired.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
