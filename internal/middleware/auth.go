package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/Henry-Iheonu/Events/internal/token"
)

// UserIDKey is the context key the auth middleware stores the caller id under.
const UserIDKey = "user_id"

// Auth requires a valid access token in the Authorization header and puts
// the authenticated user id into the request context.
func Auth(tokens *token.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization header missing"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid authorization header format"})
			return
		}

		userID, err := tokens.Verify(parts[1], token.TypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth, or "" when absent.
func UserID(c *ginext.Context) string {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
