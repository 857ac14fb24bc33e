package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func csrfRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRF(CSRFCfg{}))
	r.GET("/page", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/shop/api/thing/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

// issueToken performs a GET and returns the token cookie it set.
func issueToken(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	r.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == CSRFCookieName {
			return ck
		}
	}
	t.Fatal("no CSRF cookie issued")
	return nil
}

func TestCSRFIssuesReadableCookie(t *testing.T) {
	r := csrfRouter()
	ck := issueToken(t, r)

	if ck.HttpOnly {
		t.Error("CSRF cookie must be readable by client JS")
	}
	if len(ck.Value) != 64 {
		t.Errorf("token length = %d, want 64", len(ck.Value))
	}
}

func TestCSRFAcceptsHeaderToken(t *testing.T) {
	r := csrfRouter()
	ck := issueToken(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/shop/api/thing/", strings.NewReader("{}"))
	req.AddCookie(ck)
	req.Header.Set(CSRFHeaderName, ck.Value)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestCSRFRejectsMissingHeader(t *testing.T) {
	r := csrfRouter()
	ck := issueToken(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/shop/api/thing/", strings.NewReader("{}"))
	req.AddCookie(ck)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if !strings.Contains(w.Body.String(), "CSRF") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestCSRFRejectsMismatchedToken(t *testing.T) {
	r := csrfRouter()
	ck := issueToken(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/shop/api/thing/", strings.NewReader("{}"))
	req.AddCookie(ck)
	req.Header.Set(CSRFHeaderName, strings.Repeat("f", 64))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestCSRFAcceptsFormField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRF(CSRFCfg{}))
	r.GET("/page", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/logout", func(c *gin.Context) { c.String(http.StatusOK, "bye") })

	ck := issueToken(t, r)

	w := httptest.NewRecorder()
	form := "csrf_token=" + ck.Value
	req := httptest.NewRequest(http.MethodPost, "/logout", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(ck)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
