package main

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"viewcrumbs_echo/internal/breadcrumbs"
)

// TemplateRenderer is a custom html/template renderer for Echo
// Uses per-page template cloning to allow each page to define its own blocks
type TemplateRenderer struct {
	templates  map[string]*template.Template
	contextKey string
}

// NewTemplateRenderer parses the layouts and partials under dir and clones
// them once per page template
func NewTemplateRenderer(dir string, cfg *breadcrumbs.Config) (*TemplateRenderer, error) {
	r := &TemplateRenderer{
		templates:  make(map[string]*template.Template),
		contextKey: cfg.ContextKey,
	}
	if r.contextKey == "" {
		r.contextKey = breadcrumbs.DefaultContextKey
	}

	baseTemplate, err := template.New("").Funcs(r.funcs()).ParseGlob(filepath.Join(dir, "layouts", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	if _, err := baseTemplate.ParseGlob(filepath.Join(dir, "partials", "*.html")); err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}

	pages, err := filepath.Glob(filepath.Join(dir, "pages", "*.html"))
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		pageTemplate, err := baseTemplate.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := pageTemplate.ParseFiles(page); err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.templates[filepath.Base(page)] = pageTemplate
	}
	return r, nil
}

func (r *TemplateRenderer) funcs() template.FuncMap {
	return template.FuncMap{
		// breadcrumbs renders the trail held in the page data
		"breadcrumbs": func(data map[string]any) (template.HTML, error) {
			trail, _ := data[r.contextKey].(breadcrumbs.Trail)
			return breadcrumbs.HTML(context.Background(), trail)
		},
		"deref": func(id *uint) uint {
			if id == nil {
				return 0
			}
			return *id
		},
	}
}

// Render renders a page through the base layout
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}

	dataMap, ok := data.(map[string]any)
	if !ok {
		dataMap = map[string]any{"Data": data}
	}
	dataMap["CurrentPath"] = c.Request().URL.Path
	if _, ok := dataMap[r.contextKey]; !ok {
		dataMap[r.contextKey] = breadcrumbs.FromContext(c, r.contextKey)
	}

	return tmpl.ExecuteTemplate(w, "base", dataMap)
}
