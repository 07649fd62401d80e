package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie names
const (
	SessionCookieName   = "session"
	VigilanteCookieName = "vigilante_token"
)

// SessionCookie writes and clears an HttpOnly token cookie.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (s SessionCookie) Set(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, token, int(ttl.Seconds()), "/", "", s.Secure, true)
}

func (s SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}

func (s SessionCookie) Read(c *gin.Context) string {
	v, err := c.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return v
}
