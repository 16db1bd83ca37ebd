package breadcrumbs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned when a page does not supply its own crumbs.
	ErrNotImplemented = errors.New("breadcrumbs: crumbs not implemented")

	// ErrInvalidBreadcrumb is returned for an entry that is not a label/target pair.
	ErrInvalidBreadcrumb = errors.New("Breadcrumb requires a tuple of label and view name")

	// ErrNoReverseMatch is returned when a view name does not resolve to a URL.
	ErrNoReverseMatch = errors.New("breadcrumbs: no reverse match")

	// ErrNoModel is returned by model helpers on pages without a model.
	ErrNoModel = errors.New("breadcrumbs: page has no model")
)

// NotImplementedError names the page type that is missing a Crumbs method.
type NotImplementedError struct {
	TypeName string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s should have a Crumbs method", e.TypeName)
}

func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}
