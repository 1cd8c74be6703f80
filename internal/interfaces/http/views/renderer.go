// Package views holds the embedded HTML templates and the gin renderer that
// serves them. Every page is parsed together with the shared layout and
// partials, so each page gets its own template set.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsFile = "templates/partials.html"
	rootTemplate = "layout"
)

// Renderer implements gin's render.HTMLRender over the embedded pages.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// New parses every page under templates/.
func New() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile || file == partialsFile {
			continue
		}
		name := path.Base(file)
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, partialsFile, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustNew is New for process start-up.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Instance picks the page by file name, e.g. "feed.html".
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages["error.html"]
		data = map[string]any{
			"status":  500,
			"title":   "Internal Server Error",
			"message": "Page " + name + " does not exist.",
		}
	}
	return render.HTML{Template: t, Name: rootTemplate, Data: data}
}

// Has reports whether a page with that name was parsed.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

var funcs = template.FuncMap{
	"stars":    stars,
	"datetime": formatTime,
	"isoTime":  func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
}

// stars draws a 0..5 rating as filled and empty stars.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func formatTime(t time.Time) string {
	return t.UTC().Format("15:04, 2 January 2006")
}
