package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	msgNoToken     = "Authorization header is required"
	msgTokenFormat = "Authorization header format must be Bearer {token}"
)

// bearerOrCookie extracts the token from the Authorization header, falling
// back to the cookie when no header was sent. On failure it returns the
// message to send back with the 401.
func bearerOrCookie(c *gin.Context, cookie SessionCookie) (token, problem string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if token := cookie.Read(c); token != "" {
			return token, ""
		}
		return "", msgNoToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", msgTokenFormat
	}
	return strings.TrimSpace(parts[1]), ""
}
