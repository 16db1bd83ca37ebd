package breadcrumbs

import (
	"context"
	"fmt"
	"path"
	"reflect"
	"strings"
	"sync"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm/schema"
)

// AppLabeler lets a model name the application it belongs to. Without it the
// last element of the model's package path is used.
type AppLabeler interface {
	AppLabel() string
}

// VerboseNamer overrides the human readable singular name of a model.
type VerboseNamer interface {
	VerboseName() string
}

// VerboseNamePluraler overrides the human readable plural name of a model.
type VerboseNamePluraler interface {
	VerboseNamePlural() string
}

// Meta is the naming metadata derived from a model.
type Meta struct {
	App               string
	Name              string
	VerboseName       string
	VerboseNamePlural string
}

var schemaCache sync.Map

func parseSchema(model any) (*schema.Schema, error) {
	s, err := schema.Parse(model, &schemaCache, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("parse model %T: %w", model, err)
	}
	return s, nil
}

// MetaFor derives naming metadata for a GORM model.
func MetaFor(model any) (Meta, error) {
	if !isBound(model) {
		return Meta{}, ErrNoModel
	}
	s, err := parseSchema(model)
	if err != nil {
		return Meta{}, err
	}

	meta := Meta{
		App:         path.Base(s.ModelType.PkgPath()),
		Name:        strings.ToLower(s.Name),
		VerboseName: verboseName(s.Name),
	}
	if l, ok := model.(AppLabeler); ok {
		meta.App = l.AppLabel()
	}
	if n, ok := model.(VerboseNamer); ok {
		meta.VerboseName = n.VerboseName()
	}
	meta.VerboseNamePlural = inflection.Plural(meta.VerboseName)
	if n, ok := model.(VerboseNamePluraler); ok {
		meta.VerboseNamePlural = n.VerboseNamePlural()
	}
	return meta, nil
}

// PrimaryKey returns the primary key value of a model instance.
func PrimaryKey(instance any) (any, error) {
	if !isBound(instance) {
		return nil, fmt.Errorf("%w: nil instance", ErrNoReverseMatch)
	}
	s, err := parseSchema(instance)
	if err != nil {
		return nil, err
	}
	field := s.PrioritizedPrimaryField
	if field == nil {
		return nil, fmt.Errorf("%w: %s has no primary key field", ErrNoReverseMatch, s.Name)
	}
	value, zero := field.ValueOf(context.Background(), reflect.Indirect(reflect.ValueOf(instance)))
	if zero {
		return nil, fmt.Errorf("%w: %s has an empty primary key", ErrNoReverseMatch, s.Name)
	}
	return value, nil
}

// Title title-cases s the way page headings are written.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// verboseName turns "PaymentDue" into "payment due" and "HTTPRoute" into
// "http route", splitting where GORM would for a column name.
func verboseName(name string) string {
	return strings.ReplaceAll(schema.NamingStrategy{}.ColumnName("", name), "_", " ")
}
