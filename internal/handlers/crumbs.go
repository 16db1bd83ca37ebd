package handlers

import (
	"viewcrumbs_echo/internal/breadcrumbs"
)

// dashboardPage: Home > Dashboard
type dashboardPage struct{}

func (dashboardPage) Crumbs() ([]breadcrumbs.Crumb, error) {
	return []breadcrumbs.Crumb{breadcrumbs.C("Dashboard", "")}, nil
}

// errorPage: Home > Error
type errorPage struct{}

func (errorPage) Crumbs() ([]breadcrumbs.Crumb, error) {
	return []breadcrumbs.Crumb{breadcrumbs.C("Error", "")}, nil
}

// listPage: Home > Plans
type listPage struct {
	breadcrumbs.Views
}

func (p listPage) Crumbs() ([]breadcrumbs.Crumb, error) {
	index, err := indexCrumb(p.Views)
	if err != nil {
		return nil, err
	}
	return []breadcrumbs.Crumb{index}, nil
}

// createPage: Home > Plans > Create Payment Plan
type createPage struct {
	breadcrumbs.Views
}

func (p createPage) Crumbs() ([]breadcrumbs.Crumb, error) {
	index, err := indexCrumb(p.Views)
	if err != nil {
		return nil, err
	}
	title, err := p.ModelNameTitle()
	if err != nil {
		return nil, err
	}
	return []breadcrumbs.Crumb{index, breadcrumbs.C("Create "+title, "")}, nil
}

// recordPage is a page about one record:
// Home > Plans > <record> for the detail page and
// Home > Plans > <record> > Edit for the change page.
type recordPage[T any] struct {
	breadcrumbs.Views
	record T
	label  func(T) string
	edit   bool
}

func (p *recordPage[T]) Subject() any {
	return p.record
}

func (p *recordPage[T]) Crumbs() ([]breadcrumbs.Crumb, error) {
	index, err := indexCrumb(p.Views)
	if err != nil {
		return nil, err
	}

	crumbs := []breadcrumbs.Crumb{
		index,
		breadcrumbs.Pair(
			breadcrumbs.Of(p.label),
			breadcrumbs.OfErr(func(record T) (string, error) {
				return p.DetailViewName(record)
			}),
		),
	}
	if p.edit {
		crumbs = append(crumbs, breadcrumbs.Pair(
			"Edit",
			breadcrumbs.OfErr(func(record T) (string, error) {
				return p.EditViewName(record)
			}),
		))
	}
	return crumbs, nil
}

func indexCrumb(v breadcrumbs.Views) (breadcrumbs.Crumb, error) {
	title, err := v.ModelNameTitlePlural()
	if err != nil {
		return breadcrumbs.Crumb{}, err
	}
	url, err := v.ListViewName()
	if err != nil {
		return breadcrumbs.Crumb{}, err
	}
	return breadcrumbs.C(title, url), nil
}
