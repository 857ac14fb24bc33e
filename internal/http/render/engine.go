package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/http/flash"
	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/pkg/view"
)

// Engine parses each page template into its own set together with the
// base layout and the shared partials, so pages can redefine blocks
// without clobbering each other.
type Engine struct {
	sets map[string]*template.Template
}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"until": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	},
	"add": func(a, b int) int { return a + b },
}

// New loads "templates/pages/*.html" page sets from the given FS.
func New(fsys fs.FS) (*Engine, error) {
	pages, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("render: no page templates found")
	}

	e := &Engine{sets: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		name := strings.TrimSuffix(strings.TrimPrefix(page, "templates/pages/"), ".html")
		t, err := template.New("base.html").Funcs(funcs).ParseFS(fsys,
			"templates/base.html",
			"templates/partials/*.html",
			page,
		)
		if err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", page, err)
		}
		e.sets[name] = t
	}
	return e, nil
}

// HTML writes a rendered page. data must embed view.Base.
func (e *Engine) HTML(c *gin.Context, status int, page string, data any) {
	t, ok := e.sets[page]
	if !ok {
		middleware.Fail(c, fmt.Errorf("render: unknown page %q", page))
		return
	}
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		_ = c.Error(err)
	}
}

// ErrorPage renders the shared error template; wired into the error
// handler middleware.
func (e *Engine) ErrorPage(c *gin.Context, status int, publicMsg, requestID string) {
	data := view.ErrorPage{
		Base:      view.Base{Title: http.StatusText(status)},
		Status:    status,
		Message:   publicMsg,
		RequestID: requestID,
	}
	data.Base.CSRFToken = middleware.GetCSRFToken(c)
	e.HTML(c, status, "error", data)
}

// RedirectWithFlash sets a one-shot flash and redirects (SSR form flows).
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, f view.Flash, location string) {
	middleware.SetFlashCookie(c, codec, f)
	c.Redirect(http.StatusFound, location)
}
