package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CSRFCookieName = "reverse_csrftoken"
	CSRFHeaderName = "X-CSRF-Token"
	CtxKeyCSRF     = "csrf_token"
)

type CSRFCfg struct {
	Secure bool
}

// CSRF implements the double-submit cookie scheme: the token lives in a
// JS-readable cookie, pages echo it into forms and meta tags, and unsafe
// requests must repeat it in the X-CSRF-Token header or a form field.
func CSRF(cfg CSRFCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CSRFCookieName)
		if err != nil || len(token) != 64 {
			token = newCSRFToken()
			c.SetSameSite(http.SameSiteLaxMode)
			// not HttpOnly: the fetch helpers read it client-side
			c.SetCookie(CSRFCookieName, token, int((365 * 24 * 3600)), "/", "", cfg.Secure, false)
		}
		c.Set(CtxKeyCSRF, token)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		sent := c.GetHeader(CSRFHeaderName)
		if sent == "" {
			sent = c.PostForm("csrf_token")
		}
		if subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"success": false,
					"error":   "CSRF token missing or invalid",
				})
				return
			}
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}

// GetCSRFToken returns the token for embedding in rendered pages.
func GetCSRFToken(c *gin.Context) string {
	if v, ok := c.Get(CtxKeyCSRF); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func newCSRFToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
