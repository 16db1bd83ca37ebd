package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewcrumbs_echo/internal/breadcrumbs"
)

func TestMeta(t *testing.T) {
	tests := []struct {
		name     string
		model    any
		expected breadcrumbs.Meta
	}{
		{
			name:     "user",
			model:    &User{},
			expected: breadcrumbs.Meta{App: "accounts", Name: "user", VerboseName: "user", VerboseNamePlural: "users"},
		},
		{
			name:     "plan",
			model:    &Plan{},
			expected: breadcrumbs.Meta{App: "billing", Name: "plan", VerboseName: "payment plan", VerboseNamePlural: "payment plans"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := breadcrumbs.MetaFor(tt.model)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, meta)
		})
	}
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Alice", User{Name: "Alice", Email: "alice@example.com"}.DisplayName())
	assert.Equal(t, "bob@example.com", User{Email: "bob@example.com"}.DisplayName())
}
