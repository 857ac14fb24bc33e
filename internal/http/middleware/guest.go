package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	GuestCookieName = "reverse_session"
	CtxKeyGuestKey  = "guest_key"
)

type GuestCfg struct {
	Secure bool
}

// GuestSession gives anonymous visitors a stable random key so their
// cart survives across requests without an account.
func GuestSession(cfg GuestCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(GuestCookieName)
		if err == nil && len(key) == 40 {
			c.Set(CtxKeyGuestKey, key)
		}
		c.Next()
	}
}

// GuestKey returns the visitor's session key, empty when none was issued.
func GuestKey(c *gin.Context) string {
	if v, ok := c.Get(CtxKeyGuestKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// EnsureGuestKey returns the existing key or issues a new cookie. Called
// by mutating cart handlers so browsing alone sets no cookie.
func EnsureGuestKey(c *gin.Context, cfg GuestCfg) string {
	if key := GuestKey(c); key != "" {
		return key
	}
	key := newGuestKey()
	c.Set(CtxKeyGuestKey, key)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(GuestCookieName, key, int((30 * 24 * 3600)), "/", "", cfg.Secure, true)
	return key
}

func newGuestKey() string {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
