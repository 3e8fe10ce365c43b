// Package view renders server-side HTML pages from an embedded template
// tree. Every page template defines a "content" block that is slotted into
// the shared layout.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/shashiranjanraj/stocktracker/config"
	"github.com/shashiranjanraj/stocktracker/pkg/logger"
)

// Data is the template context handed to Render.
type Data map[string]interface{}

// Engine holds the parsed page templates.
type Engine struct {
	pages map[string]*template.Template
}

// DefaultFuncs returns the helper functions available to every template.
func DefaultFuncs() template.FuncMap {
	return template.FuncMap{
		// money formats 189.99 as "R189.99" (configured currency symbol).
		"money": func(v float64) string {
			return fmt.Sprintf("%s%.2f", config.CurrencySymbol(), v)
		},
		"date": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"month": func(s string) string {
			// "2026-08" → "Aug 2026"
			t, err := time.Parse("2006-01", s)
			if err != nil {
				return s
			}
			return t.Format("Jan 2006")
		},
	}
}

// New parses every page in pages against the shared layout.
// Page names are the file names without directory, e.g. "dashboard.html".
func New(fsys fs.FS, layout string, pages []string, funcs template.FuncMap) (*Engine, error) {
	merged := DefaultFuncs()
	for name, fn := range funcs {
		merged[name] = fn
	}

	e := &Engine{pages: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		t, err := template.New(path.Base(layout)).
			Funcs(merged).
			ParseFS(fsys, layout, page)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", page, err)
		}
		e.pages[path.Base(page)] = t
	}

	return e, nil
}

// Render writes the named page with data. The page is rendered into a buffer
// first so a template error can still produce a clean 500 response.
func (e *Engine) Render(w http.ResponseWriter, status int, page string, data Data) {
	t, ok := e.pages[page]
	if !ok {
		logger.Error("view: unknown page", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		logger.Error("view: render failed", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound writes the standard 404 page.
func (e *Engine) NotFound(w http.ResponseWriter, what string) {
	if _, ok := e.pages["not_found.html"]; ok {
		e.Render(w, http.StatusNotFound, "not_found.html", Data{"What": what})
		return
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}
