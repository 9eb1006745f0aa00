package button

import (
	"fmt"
	"strings"
)

// ParseColor reads a colour name. Unknown names fall back to primary and
// are reported with ErrUnrecognizedStyle; "default" is accepted as primary.
func ParseColor(s string) (Color, error) {
	name := normalize(s)
	switch name {
	case "":
		return ColorUnset, nil
	case "default":
		return ColorPrimary, nil
	}
	for _, c := range Colors {
		if string(c) == name {
			return c, nil
		}
	}
	return ColorPrimary, fmt.Errorf("%w: color %q", ErrUnrecognizedStyle, s)
}

// ParseVariant reads a variant name. Unknown names resolve to no variant.
func ParseVariant(s string) (Variant, error) {
	name := normalize(s)
	if name == "" {
		return VariantUnset, nil
	}
	for _, v := range Variants {
		if string(v) == name {
			return v, nil
		}
	}
	return VariantUnset, fmt.Errorf("%w: variant %q", ErrUnrecognizedStyle, s)
}

// ParseShape reads a shape name, also accepting the class-style aliases
// rounded-pill and rounded-0.
func ParseShape(s string) (Shape, error) {
	switch normalize(s) {
	case "":
		return ShapeUnset, nil
	case "pill", "rounded-pill":
		return ShapePill, nil
	case "square", "rounded-0":
		return ShapeSquare, nil
	default:
		return ShapeUnset, fmt.Errorf("%w: shape %q", ErrUnrecognizedStyle, s)
	}
}

// ParseSize reads a size name or its short form. Unknown sizes fall back to
// medium.
func ParseSize(s string) (Size, error) {
	switch normalize(s) {
	case "":
		return SizeUnset, nil
	case "sm", "small":
		return SizeSmall, nil
	case "md", "medium":
		return SizeMedium, nil
	case "lg", "large":
		return SizeLarge, nil
	default:
		return SizeMedium, fmt.Errorf("%w: size %q", ErrUnrecognizedStyle, s)
	}
}

// ParseInputSubtype reads an input type. Unknown values are returned as
// given so that building an input with them yields an Empty result.
func ParseInputSubtype(s string) (InputSubtype, error) {
	subtype := InputSubtype(normalize(s))
	if subtype == InputUnset || subtype.Valid() {
		return subtype, nil
	}
	return subtype, fmt.Errorf("%w: %q", ErrInvalidDiscriminator, s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
