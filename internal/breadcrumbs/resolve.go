package breadcrumbs

import "fmt"

// View name suffixes used by ActionViewName.
const (
	ListSuffix   = "list"
	AddSuffix    = "add"
	ChangeSuffix = "change"
	DetailSuffix = "detail"
)

// Resolver maps a named route to a URL. *echo.Echo satisfies it.
type Resolver interface {
	Reverse(name string, params ...interface{}) string
}

// Reverse resolves a named route and reports ErrNoReverseMatch for unknown
// names.
func Reverse(r Resolver, name string, params ...interface{}) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: %q (no resolver)", ErrNoReverseMatch, name)
	}
	url := r.Reverse(name, params...)
	if url == "" {
		return "", fmt.Errorf("%w: %q", ErrNoReverseMatch, name)
	}
	return url, nil
}

// ActionViewName builds the conventional route name <app>_<model>_<suffix>.
func ActionViewName(model any, suffix string) (string, error) {
	meta, err := MetaFor(model)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s_%s", meta.App, meta.Name, suffix), nil
}

// Views derives names and URLs for a model's pages. Page types embed it to
// pick up the model helpers.
type Views struct {
	resolver Resolver
	model    any
}

// NewViews returns the helpers for model, resolving URLs through r.
func NewViews(r Resolver, model any) Views {
	return Views{resolver: r, model: model}
}

// Model returns the model the views describe.
func (v Views) Model() any {
	return v.model
}

// AppName returns the model's application label.
func (v Views) AppName() (string, error) {
	meta, err := MetaFor(v.model)
	return meta.App, err
}

// ModelNameTitle returns the model's verbose name in title case.
func (v Views) ModelNameTitle() (string, error) {
	meta, err := MetaFor(v.model)
	if err != nil {
		return "", err
	}
	return Title(meta.VerboseName), nil
}

// ModelNameTitlePlural returns the model's plural verbose name in title case.
func (v Views) ModelNameTitlePlural() (string, error) {
	meta, err := MetaFor(v.model)
	if err != nil {
		return "", err
	}
	return Title(meta.VerboseNamePlural), nil
}

// ListViewName resolves the URL of the model's list page.
func (v Views) ListViewName() (string, error) {
	name, err := ActionViewName(v.model, ListSuffix)
	if err != nil {
		return "", err
	}
	return Reverse(v.resolver, name)
}

// EditViewName resolves the URL of the change page for instance.
func (v Views) EditViewName(instance any) (string, error) {
	return v.instanceURL(ChangeSuffix, instance)
}

// DetailViewName resolves the URL of the detail page for instance.
func (v Views) DetailViewName(instance any) (string, error) {
	return v.instanceURL(DetailSuffix, instance)
}

func (v Views) instanceURL(suffix string, instance any) (string, error) {
	name, err := ActionViewName(v.model, suffix)
	if err != nil {
		return "", err
	}
	pk, err := PrimaryKey(instance)
	if err != nil {
		return "", err
	}
	return Reverse(v.resolver, name, pk)
}
