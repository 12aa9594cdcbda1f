package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"axiselect.app/web/internal/format"
	"axiselect.app/web/internal/i18n"
	"axiselect.app/web/internal/markdown"
)

// viewRenderer owns the parsed template set. In dev mode templates are
// reparsed on every request so edits show up without a restart.
type viewRenderer struct {
	dir    string
	bundle *i18n.Bundle
	dev    bool
	cache  *template.Template
}

func newViewRenderer(dir string, bundle *i18n.Bundle, dev bool) (*viewRenderer, error) {
	v := &viewRenderer{dir: dir, bundle: bundle, dev: dev}
	if !dev {
		t, err := v.parse()
		if err != nil {
			return nil, err
		}
		v.cache = t
	}
	return v, nil
}

func (v *viewRenderer) parse() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":      time.Now,
		"t":        v.bundle.T,
		"markdown": markdown.Render,
		"date":     format.Date,
		"datetime": format.DateTime,
	}
	// ParseGlob doesn't support **; walk for .tmpl files instead.
	var files []string
	if err := filepath.WalkDir(v.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", v.dir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func (v *viewRenderer) lookup() (*template.Template, error) {
	if v.dev {
		return v.parse()
	}
	return v.cache, nil
}

// renderPage executes a page template. Every page template pulls in the
// shared head, header, and footer partials itself.
func (a *app) renderPage(w http.ResponseWriter, r *http.Request, page string, data any) {
	a.execute(w, r, page, data)
}

// renderTemplate executes a named fragment (htmx swaps, SSE bootstraps).
func (a *app) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	a.execute(w, r, name, data)
}

func (a *app) execute(w http.ResponseWriter, r *http.Request, name string, data any) {
	t, err := a.views.lookup()
	if err != nil {
		a.log.Error("template parse", zap.Error(err))
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		a.log.Error("template exec", zap.Error(err))
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// i18nOrDefault returns the translation for key, or def when the bundle only
// echoes the key back.
func (a *app) i18nOrDefault(lang, key, def string) string {
	if v := a.bundle.T(lang, key); v != key {
		return v
	}
	return def
}

// absoluteURL rebuilds the request URL for canonical links, honoring the
// forwarded proto set by the edge proxy.
func absoluteURL(r *http.Request) string {
	scheme := "https"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS == nil {
		scheme = "http"
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path}
	return u.String()
}
