package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDHeader = "X-User-ID"
	userIDKey    = "user_id"
)

// Identity reads the caller's user id established by the upstream auth
// layer. Requests without a valid id are rejected.
func Identity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing or invalid " + UserIDHeader + " header"},
			)
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

func UserID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}
