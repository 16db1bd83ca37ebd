package breadcrumbs

import (
	"fmt"
	"reflect"
)

// Part is one half of a crumb: the label or the target URL.
type Part interface {
	// Resolve returns the text for this part. bound reports whether the page
	// has a subject record.
	Resolve(subject any, bound bool) (string, error)
}

// Text is a literal label or URL.
type Text string

// Resolve returns the text unchanged.
func (t Text) Resolve(any, bool) (string, error) {
	return string(t), nil
}

// Func computes a label or URL from the page's subject record.
type Func func(subject any) (string, error)

// Resolve calls f with the subject record. It fails with ErrInvalidBreadcrumb
// when no record is bound.
func (f Func) Resolve(subject any, bound bool) (string, error) {
	if !bound {
		return "", fmt.Errorf("%w: computed value needs a subject record", ErrInvalidBreadcrumb)
	}
	return f(subject)
}

// Of adapts a typed function of the subject record into a Func.
func Of[T any](fn func(T) string) Func {
	return OfErr(func(v T) (string, error) {
		return fn(v), nil
	})
}

// OfErr is like Of for functions that can fail, such as URL lookups.
func OfErr[T any](fn func(T) (string, error)) Func {
	return func(subject any) (string, error) {
		v, ok := subject.(T)
		if !ok {
			var zero T
			return "", fmt.Errorf("%w: subject is %T, want %T", ErrInvalidBreadcrumb, subject, zero)
		}
		return fn(v)
	}
}

// Crumb is an unresolved trail entry.
type Crumb struct {
	Label  Part
	Target Part
}

// C builds a crumb from two literal strings.
func C(label, target string) Crumb {
	return Crumb{Label: Text(label), Target: Text(target)}
}

// Pair builds a crumb from loosely typed values. Anything other than exactly
// two supported values produces a malformed crumb that fails when the trail
// is built.
func Pair(values ...any) Crumb {
	if len(values) != 2 {
		return Crumb{}
	}
	return Crumb{Label: toPart(values[0]), Target: toPart(values[1])}
}

func toPart(v any) Part {
	switch p := v.(type) {
	case Part:
		return p
	case string:
		return Text(p)
	case func(any) string:
		return Func(func(s any) (string, error) { return p(s), nil })
	case func(any) (string, error):
		return Func(p)
	case fmt.Stringer:
		return Text(p.String())
	}
	return nil
}

func (c Crumb) valid() bool {
	return c.Label != nil && c.Target != nil
}

// Item is a resolved trail entry.
type Item struct {
	Label string
	URL   string
}

// Trail is the ordered list of items shown on a page, root first.
type Trail []Item

// Labels returns the labels of the trail in order.
func (t Trail) Labels() []string {
	labels := make([]string, len(t))
	for i, item := range t {
		labels[i] = item.Label
	}
	return labels
}

// isBound reports whether subject is a usable record. Typed nil pointers
// count as unbound.
func isBound(subject any) bool {
	if subject == nil {
		return false
	}
	v := reflect.ValueOf(subject)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return !v.IsNil()
	}
	return true
}
