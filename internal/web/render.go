package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/internal/rails"
	"github.com/orgball2608/newsportal/pkg/formatter"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutFile = "templates/layout.html"

// templates holds one parsed set per page, each sharing the layout and
// partials.
type templates struct {
	pages map[string]*template.Template
}

func parseTemplates(funcs template.FuncMap) (*templates, error) {
	partials, err := fs.Glob(templateFS, "templates/partials/*.html")
	if err != nil {
		return nil, err
	}
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, append([]string{layoutFile}, partials...)...)
	if err != nil {
		return nil, err
	}

	t := &templates{pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		t.pages[strings.TrimSuffix(path.Base(p), ".html")] = clone
	}
	return t, nil
}

func (s *Server) funcs() template.FuncMap {
	funcs := sprig.FuncMap()
	funcs["media"] = func(items domain.MediaList, class, href string) template.HTML {
		return s.renderer.Render(items, class, href)
	}
	funcs["resolve"] = s.resolver.Resolve
	funcs["placeholder"] = s.resolver.Placeholder
	funcs["categoryHref"] = rails.CategoryHref
	funcs["postHref"] = rails.PostHref
	funcs["formatDate"] = formatter.FormatDate
	funcs["truncate"] = formatter.Truncate
	funcs["pageHref"] = pageHref
	funcs["safeHTML"] = func(s string) template.HTML {
		return template.HTML(s)
	}
	return funcs
}

// pageHref returns the current query with key set to value.
func pageHref(q url.Values, key string, value any) string {
	next := url.Values{}
	for k, v := range q {
		next[k] = v
	}
	next.Set(key, fmt.Sprint(value))
	return "?" + next.Encode()
}

func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := s.templates.pages[page]
	if !ok {
		s.logger.Error("Unknown template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.logger.Error("Failed to render template", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("Failed to write response", "page", page, "error", err)
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return v
}
