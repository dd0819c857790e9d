package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"photoboard/src/app/http/response"
	"photoboard/src/core/ports"
)

const bearerPrefix = "Bearer "

// UserIDKey is the context key under which the authenticated user id is stored.
const UserIDKey = "user_id"

// unauthorizedMessage covers every rejection: a missing header, a
// malformed header, and a failed token verification are indistinguishable
// to the caller.
const unauthorizedMessage = "authorization required"

// Auth enforces that the request carries a valid bearer token.
// On success it stores the token's user id in the context; on any failure
// the pipeline halts with 401 before the protected handler runs.
func Auth(tokens ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			response.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID retrieves the authenticated user id set by Auth.
func CurrentUserID(c *gin.Context) (string, bool) {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}
