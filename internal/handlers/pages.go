package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"viewcrumbs_echo/internal/breadcrumbs"
)

// Pages renders templates with the breadcrumb trail of the page being shown
type Pages struct {
	cfg      *breadcrumbs.Config
	resolver breadcrumbs.Resolver
	log      *zap.Logger
}

// NewPages creates a Pages renderer. cfg is shared by every request.
func NewPages(cfg *breadcrumbs.Config, resolver breadcrumbs.Resolver, log *zap.Logger) *Pages {
	return &Pages{cfg: cfg, resolver: resolver, log: log}
}

// Views returns the model helpers for model
func (p *Pages) Views(model any) breadcrumbs.Views {
	return breadcrumbs.NewViews(p.resolver, model)
}

// Render builds the context for page, merges the fragment produced by next
// and renders the named template.
func (p *Pages) Render(c echo.Context, code int, name string, page any, next breadcrumbs.ContextFunc) error {
	b, err := breadcrumbs.New(page, p.cfg,
		breadcrumbs.WithResolver(p.resolver),
		breadcrumbs.WithLogger(p.log))
	if err != nil {
		return err
	}

	data, err := b.ContextData(c, next)
	if err != nil {
		return fmt.Errorf("build context for %s: %w", name, err)
	}
	return c.Render(code, name, data)
}

// RenderError renders the error page: Home > Error
func (p *Pages) RenderError(c echo.Context, code int, title, message string) error {
	return p.Render(c, code, "error.html", errorPage{}, func(echo.Context) (map[string]any, error) {
		return map[string]any{
			"Title":        title,
			"ActiveNav":    "",
			"ErrorTitle":   title,
			"ErrorMessage": message,
			"StatusCode":   code,
		}, nil
	})
}

// fragment is a shorthand for a static context fragment
func fragment(data map[string]any) breadcrumbs.ContextFunc {
	return func(echo.Context) (map[string]any, error) {
		return data, nil
	}
}

func renderOK(p *Pages, c echo.Context, name string, page any, data map[string]any) error {
	return p.Render(c, http.StatusOK, name, page, fragment(data))
}
