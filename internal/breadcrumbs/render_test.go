package breadcrumbs

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	trail := Trail{{"Home", "/"}, {"Plans", "/plans"}, {"Edit <Plan>", "/plans/1/edit"}}

	var sb strings.Builder
	require.NoError(t, Component(trail).Render(context.Background(), &sb))

	assert.Equal(t,
		`<nav aria-label="breadcrumb"><ol class="breadcrumb">`+
			`<li class="breadcrumb-item"><a href="/">Home</a></li>`+
			`<li class="breadcrumb-item"><a href="/plans">Plans</a></li>`+
			`<li class="breadcrumb-item active" aria-current="page">Edit &lt;Plan&gt;</li>`+
			`</ol></nav>`,
		sb.String())
}

func TestComponentEmptyTrail(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Component(nil).Render(context.Background(), &sb))
	assert.Empty(t, sb.String())
}

func TestComponentItemWithoutURL(t *testing.T) {
	trail := Trail{{"Home", "/"}, {"Reports", ""}, {"Monthly", "/reports/monthly"}}

	var sb strings.Builder
	require.NoError(t, Component(trail).Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), `<li class="breadcrumb-item">Reports</li>`)
}

func TestHTMLSanitizesUnsafeURLs(t *testing.T) {
	html, err := HTML(context.Background(), Trail{{"Bad", "javascript:alert(1)"}, {"Here", ""}})
	require.NoError(t, err)
	assert.NotContains(t, string(html), "javascript:")
}
