package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/Viviane-Queiroz/dev-shop/configs"
	"github.com/Viviane-Queiroz/dev-shop/internal/logging"
	"github.com/Viviane-Queiroz/dev-shop/internal/session"
)

type LoginHandler struct {
	cfg      configs.Config
	sessions session.Store
	oauth    *oauth2.Config
}

func NewLoginHandler(cfg configs.Config, sessions session.Store) *LoginHandler {
	return &LoginHandler{cfg: cfg, sessions: sessions, oauth: session.OAuthConfig(cfg)}
}

// Login starts the GitHub sign-in dance. A visitor who already holds a
// valid session is sent straight to the storefront.
func (h *LoginHandler) Login(c *gin.Context) {
	if h.hasValidSession(c) {
		c.Redirect(http.StatusFound, "/v1/products")
		return
	}

	state := uuid.NewString()
	if err := h.sessions.PutState(c.Request.Context(), state); err != nil {
		logging.From(c).Error("store oauth state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// Callback finishes the dance: verify state, exchange the code, load the
// GitHub profile, mint a session and hand the visitor its cookie.
func (h *LoginHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	l := logging.From(c)

	state := c.Query("state")
	ok, err := h.sessions.TakeState(ctx, state)
	if err != nil || !ok {
		l.Warn("oauth state rejected", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_state"})
		return
	}

	tok, err := h.oauth.Exchange(ctx, c.Query("code"))
	if err != nil {
		l.Warn("oauth exchange failed", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "oauth_exchange_failed"})
		return
	}

	user, err := session.FetchGitHubUser(ctx, h.oauth, tok)
	if err != nil {
		l.Warn("github profile fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "github_unavailable"})
		return
	}

	sess := session.Session{
		ID:        uuid.NewString(),
		UserID:    user.UserID(),
		Login:     user.Login,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.sessions.Save(ctx, sess); err != nil {
		l.Error("save session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	signed, err := session.NewToken(h.cfg, sess.ID)
	if err != nil {
		l.Error("sign session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.SetCookie(h.cfg.Session.CookieName, signed, int(h.cfg.Session.TTL.Seconds()), "/", "", false, true)
	l.Info("visitor signed in", "login", user.Login)
	c.Redirect(http.StatusFound, "/v1/products")
}

// Logout drops the server-side session and expires the cookie.
func (h *LoginHandler) Logout(c *gin.Context) {
	raw, err := c.Cookie(h.cfg.Session.CookieName)
	if err == nil {
		if sid, err := session.ParseToken(h.cfg, raw); err == nil {
			_ = h.sessions.Delete(c.Request.Context(), sid)
		}
	}
	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *LoginHandler) hasValidSession(c *gin.Context) bool {
	raw, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil {
		return false
	}
	sid, err := session.ParseToken(h.cfg, raw)
	if err != nil {
		return false
	}
	_, found, err := h.sessions.Get(c.Request.Context(), sid)
	return err == nil && found
}
