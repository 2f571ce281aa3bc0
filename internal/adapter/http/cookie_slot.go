package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// cookieSlot binds the cart's durable slot to the request's cookie jar.
// gin url-escapes cookie values on the way out and unescapes on the way
// in, so the JSON payload survives the cookie value grammar.
type cookieSlot struct {
	c      *gin.Context
	name   string
	maxAge time.Duration
}

func newCookieSlot(c *gin.Context, name string, maxAge time.Duration) cookieSlot {
	return cookieSlot{c: c, name: name, maxAge: maxAge}
}

func (s cookieSlot) Read() (string, bool) {
	v, err := s.c.Cookie(s.name)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s cookieSlot) Write(value string) {
	s.c.SetCookie(s.name, value, int(s.maxAge.Seconds()), "/", "", false, true)
}
