package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Viviane-Queiroz/dev-shop/configs"
	"github.com/Viviane-Queiroz/dev-shop/internal/session"
)

const sessionKey = "session"

// Gate is the session/auth gate in front of the storefront routes: no
// valid session cookie, no cart.
type Gate struct {
	cfg      configs.Config
	sessions session.Store
}

func NewGate(cfg configs.Config, sessions session.Store) *Gate {
	return &Gate{cfg: cfg, sessions: sessions}
}

func (g *Gate) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(g.cfg.Session.CookieName)
		if err != nil {
			unauth(c, "missing_session", "sign in at /login")
			return
		}

		sid, err := session.ParseToken(g.cfg, raw)
		if err != nil {
			unauth(c, "invalid_session", "session token rejected")
			return
		}

		sess, found, err := g.sessions.Get(c.Request.Context(), sid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
			return
		}
		if !found {
			unauth(c, "expired_session", "session no longer exists")
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Current returns the session the gate attached to this request.
func Current(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

func unauth(c *gin.Context, code, desc string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code, "error_description": desc})
}
