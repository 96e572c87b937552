package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const DefaultSessionCookieName = "access_token"

// SessionToken returns the session token from the named cookie, falling back
// to an "Authorization: Bearer" header. Empty when neither is present.
func SessionToken(c *gin.Context, cookieName string) string {
	if cookieName == "" {
		cookieName = DefaultSessionCookieName
	}
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
