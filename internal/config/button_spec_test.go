package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/button"
)

func TestButtonSpecConversion(t *testing.T) {
	t.Parallel()

	spec := ButtonSpec{
		Name:    "buy",
		Label:   "Buy",
		As:      "Button",
		Color:   "success",
		Size:    "sm",
		Shape:   "rounded-pill",
		Class:   "w-full",
		Leading: "$",
	}

	cfg, warnings := spec.Button(nil)
	require.Empty(t, warnings)
	require.Equal(t, button.ButtonKind{}, cfg.Kind)
	require.Equal(t, button.Style{Color: button.ColorSuccess, Shape: button.ShapePill, Size: button.SizeSmall}, cfg.Style)
	require.Equal(t, []string{"w-full"}, cfg.Classes)
	require.NotNil(t, cfg.Content)
	require.NotNil(t, cfg.Leading)
	require.Nil(t, cfg.Trailing)
}

func TestButtonSpecUnknownStyleFallsBack(t *testing.T) {
	t.Parallel()

	spec := ButtonSpec{Name: "odd", Label: "Odd", As: "button", Color: "mauve", Size: "huge", Variant: "glass"}
	res, warnings := spec.Build(nil)
	require.Len(t, warnings, 3)
	for _, w := range warnings {
		require.ErrorIs(t, w, button.ErrUnrecognizedStyle)
		require.Contains(t, w.Error(), "odd:")
	}

	node, ok := res.Node()
	require.True(t, ok)
	require.Equal(t, button.Resolve(button.Style{}), node.Classes())
}

func TestButtonSpecInputUsesLabelAsValue(t *testing.T) {
	t.Parallel()

	cfg, warnings := ButtonSpec{Name: "join", As: "input", Type: "submit", Label: "Join"}.Button(nil)
	require.Empty(t, warnings)
	require.Equal(t, button.InputKind{Subtype: button.InputSubmit, Name: "join", Value: "Join"}, cfg.Kind)
}

func TestButtonSpecInvalidInputBuildsEmpty(t *testing.T) {
	t.Parallel()

	res, warnings := ButtonSpec{Name: "bad", As: "input", Type: "checkbox"}.Build(func() {})
	require.True(t, res.Empty())
	require.ErrorIs(t, res.Reason(), button.ErrInvalidDiscriminator)
	require.Len(t, warnings, 1)
	require.ErrorIs(t, warnings[0], button.ErrInvalidDiscriminator)
}

func TestButtonSpecWithoutKindBuildsEmpty(t *testing.T) {
	t.Parallel()

	res, warnings := ButtonSpec{Name: "none", Label: "Nothing"}.Build(nil)
	require.True(t, res.Empty())
	require.ErrorIs(t, res.Reason(), button.ErrNoKind)
	require.Len(t, warnings, 1)
}

func TestDefaultGalleryBuilds(t *testing.T) {
	t.Parallel()

	empty := 0
	for _, spec := range DefaultGallery() {
		res, _ := spec.Build(func() {})
		if res.Empty() {
			empty++
			require.Equal(t, "input-invalid", spec.Name)
		}
	}
	require.Equal(t, 1, empty)
}
