package button

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		kind       Kind
		disabled   bool
		activation bool
		wantErr    error
		assert     func(t *testing.T, plan Plan)
	}{
		{
			name:    "nil kind",
			wantErr: ErrNoKind,
		},
		{
			name:    "nil link pointer",
			kind:    (*LinkKind)(nil),
			wantErr: ErrNoKind,
		},
		{
			name:       "link defaults href",
			kind:       LinkKind{},
			activation: true,
			assert: func(t *testing.T, plan Plan) {
				require.Equal(t, ElementAnchor, plan.Element)
				href, ok := plan.Attr("href")
				require.True(t, ok)
				require.Equal(t, "#", href.Value)
				role, ok := plan.Attr("role")
				require.True(t, ok)
				require.Equal(t, "button", role.Value)
				require.True(t, plan.Interactive)
				require.True(t, plan.Children)
				require.Empty(t, plan.Warnings)
			},
		},
		{
			name: "link with blank target gets rel",
			kind: &LinkKind{Href: "https://example.com", Target: "_blank"},
			assert: func(t *testing.T, plan Plan) {
				rel, ok := plan.Attr("rel")
				require.True(t, ok)
				require.Equal(t, "noopener noreferrer", rel.Value)
				require.False(t, plan.Interactive)
			},
		},
		{
			name:       "disabled link is inert and warns",
			kind:       LinkKind{Href: "/shop"},
			disabled:   true,
			activation: true,
			assert: func(t *testing.T, plan Plan) {
				require.Equal(t, ElementAnchor, plan.Element)
				require.False(t, plan.Interactive)
				require.True(t, plan.Disabled)
				_, hasHref := plan.Attr("href")
				require.False(t, hasHref)
				aria, ok := plan.Attr("aria-disabled")
				require.True(t, ok)
				require.Equal(t, "true", aria.Value)
				_, hasDisabled := plan.Attr("disabled")
				require.False(t, hasDisabled)
				require.Equal(t, []error{ErrDisabledLink}, plan.Warnings)
			},
		},
		{
			name:       "button has fixed type",
			kind:       ButtonKind{},
			activation: true,
			assert: func(t *testing.T, plan Plan) {
				require.Equal(t, ElementButton, plan.Element)
				typ, ok := plan.Attr("type")
				require.True(t, ok)
				require.Equal(t, "button", typ.Value)
				require.True(t, plan.Interactive)
			},
		},
		{
			name:       "disabled button suppresses activation",
			kind:       ButtonKind{},
			disabled:   true,
			activation: true,
			assert: func(t *testing.T, plan Plan) {
				require.False(t, plan.Interactive)
				attr, ok := plan.Attr("disabled")
				require.True(t, ok)
				require.True(t, attr.Boolean)
			},
		},
		{
			name:    "input without subtype",
			kind:    InputKind{},
			wantErr: ErrInvalidDiscriminator,
		},
		{
			name:    "input with unknown subtype",
			kind:    InputKind{Subtype: "checkbox"},
			wantErr: ErrInvalidDiscriminator,
		},
		{
			name:       "submit input",
			kind:       InputKind{Subtype: InputSubmit, Name: "signup", Value: "Join"},
			activation: true,
			assert: func(t *testing.T, plan Plan) {
				require.Equal(t, ElementInput, plan.Element)
				require.False(t, plan.Children)
				require.Equal(t, []Attr{
					{Name: "type", Value: "submit"},
					{Name: "name", Value: "signup"},
					{Name: "value", Value: "Join"},
				}, plan.Attrs)
				require.True(t, plan.Interactive)
			},
		},
		{
			name:       "disabled reset input",
			kind:       InputKind{Subtype: InputReset},
			disabled:   true,
			activation: true,
			assert: func(t *testing.T, plan Plan) {
				require.False(t, plan.Interactive)
				_, ok := plan.Attr("disabled")
				require.True(t, ok)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			plan, err := Select(tc.kind, tc.disabled, tc.activation)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Equal(t, Plan{}, plan)
				return
			}
			require.NoError(t, err)
			tc.assert(t, plan)
		})
	}
}

func TestInputSubtypeValid(t *testing.T) {
	t.Parallel()

	for _, s := range []InputSubtype{InputButton, InputSubmit, InputReset} {
		require.True(t, s.Valid())
	}
	for _, s := range []InputSubtype{InputUnset, "text", "SUBMIT"} {
		require.False(t, s.Valid())
	}
}
