package breadcrumbs

import (
	"fmt"
	"maps"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Source is implemented by every page that shows a breadcrumb trail.
type Source interface {
	// Crumbs returns the page's own entries, root first, without the home
	// entry.
	Crumbs() ([]Crumb, error)
}

// ModelPage is implemented by pages about a model. Embedding Views
// satisfies it.
type ModelPage interface {
	Model() any
}

// SubjectPage is implemented by pages about a single record.
type SubjectPage interface {
	Subject() any
}

// HomePather overrides the configured home path for one page.
type HomePather interface {
	HomePath() string
}

// HomeToggler overrides the configured AddHome setting for one page.
type HomeToggler interface {
	AddHome() bool
}

// ContextFunc produces the page's own render context fragment.
type ContextFunc func(c echo.Context) (map[string]any, error)

// Builder computes a page's trail and places it in the render context.
type Builder struct {
	page     Source
	raw      any
	cfg      *Config
	resolver Resolver
	logger   *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithResolver sets the route resolver used by the model helpers.
func WithResolver(r Resolver) Option {
	return func(b *Builder) { b.resolver = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New returns a builder for page. It fails with a *NotImplementedError when
// page does not implement Source.
func New(page any, cfg *Config, opts ...Option) (*Builder, error) {
	src, ok := page.(Source)
	if !ok || !isBound(page) {
		return nil, &NotImplementedError{TypeName: fmt.Sprintf("%T", page)}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	b := &Builder{
		page:   src,
		raw:    page,
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Crumbs returns the page's own entries.
func (b *Builder) Crumbs() ([]Crumb, error) {
	return b.page.Crumbs()
}

// HomeLabel returns the label of the root entry.
func (b *Builder) HomeLabel() string {
	return b.cfg.homeLabel()
}

// HomePath returns the URL of the root entry.
func (b *Builder) HomePath() string {
	if p, ok := b.raw.(HomePather); ok {
		return p.HomePath()
	}
	return b.cfg.homePath()
}

// AddHome reports whether the root entry is prepended.
func (b *Builder) AddHome() bool {
	if t, ok := b.raw.(HomeToggler); ok {
		return t.AddHome()
	}
	return b.cfg.AddHome
}

// ContextKey returns the store key the trail is kept under.
func (b *Builder) ContextKey() string {
	return b.cfg.contextKey()
}

// Subject returns the page's subject record and whether one is bound.
func (b *Builder) Subject() (any, bool) {
	p, ok := b.raw.(SubjectPage)
	if !ok {
		return nil, false
	}
	subject := p.Subject()
	return subject, isBound(subject)
}

// Views returns the model helpers for the page's model.
func (b *Builder) Views() Views {
	var model any
	if p, ok := b.raw.(ModelPage); ok {
		model = p.Model()
	}
	return NewViews(b.resolver, model)
}

// AppName returns the application label of the page's model.
func (b *Builder) AppName() (string, error) { return b.Views().AppName() }

// ModelNameTitle returns the title-cased verbose name of the page's model.
func (b *Builder) ModelNameTitle() (string, error) { return b.Views().ModelNameTitle() }

// ModelNameTitlePlural returns the title-cased plural verbose name of the page's model.
func (b *Builder) ModelNameTitlePlural() (string, error) { return b.Views().ModelNameTitlePlural() }

// ListViewName resolves the URL of the model's list page.
func (b *Builder) ListViewName() (string, error) { return b.Views().ListViewName() }

// EditViewName resolves the URL of the edit page for instance.
func (b *Builder) EditViewName(instance any) (string, error) {
	return b.Views().EditViewName(instance)
}

// DetailViewName resolves the URL of the detail page for instance.
func (b *Builder) DetailViewName(instance any) (string, error) {
	return b.Views().DetailViewName(instance)
}

// Build resolves the full trail without touching any store.
func (b *Builder) Build() (Trail, error) {
	crumbs, err := b.Crumbs()
	if err != nil {
		return nil, err
	}
	if b.AddHome() {
		crumbs = append([]Crumb{C(b.HomeLabel(), b.HomePath())}, crumbs...)
	}

	subject, bound := b.Subject()
	trail := make(Trail, 0, len(crumbs))
	for i, crumb := range crumbs {
		if !crumb.valid() {
			return nil, fmt.Errorf("entry %d: %w", i, ErrInvalidBreadcrumb)
		}
		label, err := crumb.Label.Resolve(subject, bound)
		if err != nil {
			return nil, fmt.Errorf("entry %d label: %w", i, err)
		}
		target, err := crumb.Target.Resolve(subject, bound)
		if err != nil {
			return nil, fmt.Errorf("entry %d target: %w", i, err)
		}
		trail = append(trail, Item{Label: label, URL: target})
	}
	return trail, nil
}

// UpdateBreadcrumbs appends the page's trail to the one held in s. Nothing
// is appended when any entry fails.
func (b *Builder) UpdateBreadcrumbs(s Store) error {
	trail, err := b.Build()
	if err != nil {
		return err
	}
	key := b.ContextKey()
	for _, item := range trail {
		Append(s, key, item.Label, item.URL)
	}
	b.logger.Debug("breadcrumbs updated",
		zap.String("page", fmt.Sprintf("%T", b.raw)),
		zap.Strings("labels", trail.Labels()))
	return nil
}

// ContextData builds the render context for the page. A trail left in the
// request by an earlier builder is cleared first. next, when not nil,
// supplies the page's own fragment, which wins over the breadcrumb keys.
func (b *Builder) ContextData(c echo.Context, next ContextFunc) (map[string]any, error) {
	key := b.ContextKey()
	if Has(c, key) {
		b.logger.Debug("clearing existing breadcrumbs", zap.String("key", key))
		Clear(c, key)
	}
	if err := b.UpdateBreadcrumbs(c); err != nil {
		return nil, err
	}

	ctx := map[string]any{
		"request": c.Request(),
		key:       FromContext(c, key),
	}
	if next == nil {
		return ctx, nil
	}
	fragment, err := next(c)
	if err != nil {
		return nil, err
	}
	maps.Copy(ctx, fragment)
	return ctx, nil
}
