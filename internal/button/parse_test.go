package button

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStyleAxes(t *testing.T) {
	t.Parallel()

	color, err := ParseColor(" Danger ")
	require.NoError(t, err)
	require.Equal(t, ColorDanger, color)

	color, err = ParseColor("default")
	require.NoError(t, err)
	require.Equal(t, ColorPrimary, color)

	color, err = ParseColor("mauve")
	require.ErrorIs(t, err, ErrUnrecognizedStyle)
	require.Equal(t, ColorPrimary, color)

	variant, err := ParseVariant("ghost")
	require.NoError(t, err)
	require.Equal(t, VariantGhost, variant)

	variant, err = ParseVariant("glass")
	require.ErrorIs(t, err, ErrUnrecognizedStyle)
	require.Equal(t, VariantUnset, variant)

	shape, err := ParseShape("rounded-pill")
	require.NoError(t, err)
	require.Equal(t, ShapePill, shape)

	shape, err = ParseShape("rounded-0")
	require.NoError(t, err)
	require.Equal(t, ShapeSquare, shape)

	size, err := ParseSize("lg")
	require.NoError(t, err)
	require.Equal(t, SizeLarge, size)

	size, err = ParseSize("xxl")
	require.ErrorIs(t, err, ErrUnrecognizedStyle)
	require.Equal(t, SizeMedium, size)

	size, err = ParseSize("")
	require.NoError(t, err)
	require.Equal(t, SizeUnset, size)
}

func TestParseInputSubtype(t *testing.T) {
	t.Parallel()

	subtype, err := ParseInputSubtype("SUBMIT")
	require.NoError(t, err)
	require.Equal(t, InputSubmit, subtype)

	subtype, err = ParseInputSubtype("")
	require.NoError(t, err)
	require.Equal(t, InputUnset, subtype)

	subtype, err = ParseInputSubtype("checkbox")
	require.ErrorIs(t, err, ErrInvalidDiscriminator)
	require.Equal(t, InputSubtype("checkbox"), subtype)
	require.True(t, Build(Config{Kind: InputKind{Subtype: subtype}}).Empty())
}
