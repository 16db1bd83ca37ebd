package breadcrumbs

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type PaymentDue struct {
	ID uint `gorm:"primarykey"`
}

type Person struct {
	ID uint `gorm:"primarykey"`
}

func (Person) VerboseNamePlural() string { return "people" }

type HTTPRoute struct {
	Key string `gorm:"primarykey"`
}

func (HTTPRoute) VerboseName() string { return "route" }

func TestVerboseName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Plan", expected: "plan"},
		{input: "PaymentDue", expected: "payment due"},
		{input: "UserNotifPreference", expected: "user notif preference"},
		{input: "HTTPRoute", expected: "http route"},
		{input: "URL", expected: "url"},
		{input: "PlanID", expected: "plan id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, verboseName(tt.input))
		})
	}
}

func TestMetaFor(t *testing.T) {
	tests := []struct {
		name     string
		model    any
		expected Meta
	}{
		{
			name:     "app label override",
			model:    &Widget{},
			expected: Meta{App: "shop", Name: "widget", VerboseName: "widget", VerboseNamePlural: "widgets"},
		},
		{
			name:     "package name as app",
			model:    &PaymentDue{},
			expected: Meta{App: "breadcrumbs", Name: "paymentdue", VerboseName: "payment due", VerboseNamePlural: "payment dues"},
		},
		{
			name:     "plural override",
			model:    Person{},
			expected: Meta{App: "breadcrumbs", Name: "person", VerboseName: "person", VerboseNamePlural: "people"},
		},
		{
			name:     "singular override",
			model:    &HTTPRoute{},
			expected: Meta{App: "breadcrumbs", Name: "httproute", VerboseName: "route", VerboseNamePlural: "routes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := MetaFor(tt.model)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, meta)
		})
	}
}

func TestMetaForNoModel(t *testing.T) {
	_, err := MetaFor(nil)
	assert.ErrorIs(t, err, ErrNoModel)

	var w *Widget
	_, err = MetaFor(w)
	assert.ErrorIs(t, err, ErrNoModel)
}

func TestPrimaryKey(t *testing.T) {
	pk, err := PrimaryKey(&Widget{ID: 7})
	require.NoError(t, err)
	assert.EqualValues(t, 7, pk)

	_, err = PrimaryKey(&Widget{})
	assert.ErrorIs(t, err, ErrNoReverseMatch)

	_, err = PrimaryKey(nil)
	assert.ErrorIs(t, err, ErrNoReverseMatch)
}

func newRouter() *echo.Echo {
	e := echo.New()
	noop := func(echo.Context) error { return nil }
	e.GET("/widgets", noop).Name = "shop_widget_list"
	e.GET("/widgets/:id", noop).Name = "shop_widget_detail"
	e.GET("/widgets/:id/edit", noop).Name = "shop_widget_change"
	return e
}

func TestViews(t *testing.T) {
	v := NewViews(newRouter(), &Widget{})

	app, err := v.AppName()
	require.NoError(t, err)
	assert.Equal(t, "shop", app)

	title, err := v.ModelNameTitle()
	require.NoError(t, err)
	assert.Equal(t, "Widget", title)

	plural, err := v.ModelNameTitlePlural()
	require.NoError(t, err)
	assert.Equal(t, "Widgets", plural)

	list, err := v.ListViewName()
	require.NoError(t, err)
	assert.Equal(t, "/widgets", list)

	edit, err := v.EditViewName(&Widget{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, "/widgets/3/edit", edit)

	detail, err := v.DetailViewName(&Widget{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, "/widgets/3", detail)
}

func TestViewsTitleCasesMultiWordNames(t *testing.T) {
	v := NewViews(nil, &PaymentDue{})

	title, err := v.ModelNameTitle()
	require.NoError(t, err)
	assert.Equal(t, "Payment Due", title)

	plural, err := v.ModelNameTitlePlural()
	require.NoError(t, err)
	assert.Equal(t, "Payment Dues", plural)
}

func TestViewsNoReverseMatch(t *testing.T) {
	_, err := NewViews(newRouter(), &PaymentDue{}).ListViewName()
	assert.ErrorIs(t, err, ErrNoReverseMatch)

	_, err = NewViews(nil, &Widget{}).ListViewName()
	assert.ErrorIs(t, err, ErrNoReverseMatch)

	_, err = NewViews(newRouter(), &Widget{}).EditViewName(&Widget{})
	assert.ErrorIs(t, err, ErrNoReverseMatch)
}

func TestViewsNoModel(t *testing.T) {
	_, err := NewViews(newRouter(), nil).ListViewName()
	assert.ErrorIs(t, err, ErrNoModel)
}

func TestBuilderModelHelpers(t *testing.T) {
	page := &widgetPage{Views: NewViews(nil, &Widget{})}
	b, err := New(page, nil, WithResolver(newRouter()))
	require.NoError(t, err)

	list, err := b.ListViewName()
	require.NoError(t, err)
	assert.Equal(t, "/widgets", list)

	edit, err := b.EditViewName(&Widget{ID: 9})
	require.NoError(t, err)
	assert.Equal(t, "/widgets/9/edit", edit)

	plural, err := b.ModelNameTitlePlural()
	require.NoError(t, err)
	assert.Equal(t, "Widgets", plural)
}
