package button

import "strings"

// Color selects the palette of a control when no variant is set.
type Color string

const (
	ColorUnset     Color = ""
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorSuccess   Color = "success"
	ColorDanger    Color = "danger"
	ColorWarning   Color = "warning"
	ColorInfo      Color = "info"
	ColorLight     Color = "light"
	ColorDark      Color = "dark"
)

// Variant replaces the colour palette entirely when set.
type Variant string

const (
	VariantUnset   Variant = ""
	VariantOutline Variant = "outline"
	VariantGhost   Variant = "ghost"
	VariantLink    Variant = "link"
)

// Shape adds corner tokens on top of the palette.
type Shape string

const (
	ShapeUnset  Shape = ""
	ShapePill   Shape = "pill"
	ShapeSquare Shape = "square"
)

// Size controls padding and text scale.
type Size string

const (
	SizeUnset  Size = ""
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Colors lists every recognised colour in display order.
var Colors = []Color{ColorPrimary, ColorSecondary, ColorSuccess, ColorDanger, ColorWarning, ColorInfo, ColorLight, ColorDark}

// Variants lists every recognised variant.
var Variants = []Variant{VariantOutline, VariantGhost, VariantLink}

// Shapes lists every recognised shape.
var Shapes = []Shape{ShapePill, ShapeSquare}

// Sizes lists every recognised size.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// Token is a single presentation class.
type Token string

// Tokens is an ordered class list.
type Tokens []Token

// String joins the tokens with single spaces.
func (t Tokens) String() string {
	parts := make([]string, len(t))
	for i, tok := range t {
		parts[i] = string(tok)
	}
	return strings.Join(parts, " ")
}

// Contains reports whether tok is present.
func (t Tokens) Contains(tok Token) bool {
	for _, existing := range t {
		if existing == tok {
			return true
		}
	}
	return false
}

// With returns a copy of t followed by the caller supplied classes. Each
// entry may carry several whitespace separated classes; blanks are dropped.
func (t Tokens) With(extra ...string) Tokens {
	out := make(Tokens, len(t), len(t)+len(extra))
	copy(out, t)
	for _, entry := range extra {
		for _, field := range strings.Fields(entry) {
			out = append(out, Token(field))
		}
	}
	return out
}

// Style is the four style axes of a control.
type Style struct {
	Color   Color
	Variant Variant
	Shape   Shape
	Size    Size
}

var baseTokens = Tokens{
	"inline-flex", "items-center", "font-semibold",
	"focus:outline-none", "focus:ring-2", "focus:ring-offset-2", "rounded",
}

var colorTable = map[Color]Tokens{
	ColorPrimary:   {"text-white", "bg-[#5856d6]", "hover:bg-[#4b49b6]"},
	ColorSecondary: {"text-white", "bg-[#6b7785]", "hover:bg-[#5b6571]"},
	ColorSuccess:   {"text-white", "bg-[#1b9e3e]", "hover:bg-[#3dad5b]"},
	ColorDanger:    {"text-white", "bg-[#e55353]", "hover:bg-[#e96d6d]"},
	ColorWarning:   {"text-white", "bg-[#f9b115]", "hover:bg-[#fabd38]"},
	ColorInfo:      {"text-white", "bg-[#39f]", "hover:bg-[#52a8ff]"},
	ColorLight:     {"text-white", "bg-[#f3f4f7]", "hover:bg-[#f5f6f8]"},
	ColorDark:      {"bg-[#212631]", "hover:bg-[#1c202a]"},
}

var variantTable = map[Variant]Tokens{
	VariantOutline: {"border-2", "border-solid", "border-current"},
	VariantLink:    {"text-blue-600", "bg-transparent"},
	VariantGhost:   {"bg-transparent"},
}

var shapeTable = map[Shape]Tokens{
	ShapePill:   {"rounded-full"},
	ShapeSquare: {"rounded-none"},
}

var sizeTable = map[Size]Tokens{
	SizeSmall:  {"px-3", "py-2", "text-sm"},
	SizeMedium: {"px-4", "py-2", "text-base"},
	SizeLarge:  {"px-6", "py-3", "text-lg"},
}

// Resolve maps a style to its class tokens. The result is never empty and
// depends on nothing but s.
func Resolve(s Style) Tokens {
	return merge(
		baseTokens,
		sizeTokens(s.Size),
		paletteTokens(s.Color, s.Variant),
		shapeTable[s.Shape],
	)
}

// ColorTokens returns the palette tokens a colour contributes when no
// variant overrides it.
func ColorTokens(c Color) Tokens {
	if tokens, ok := colorTable[c]; ok {
		return append(Tokens(nil), tokens...)
	}
	return append(Tokens(nil), colorTable[ColorPrimary]...)
}

// paletteTokens is the precedence step: a recognised variant replaces the
// colour tokens, it never merges with them.
func paletteTokens(c Color, v Variant) Tokens {
	if tokens, ok := variantTable[v]; ok {
		return tokens
	}
	return ColorTokens(c)
}

func sizeTokens(s Size) Tokens {
	if tokens, ok := sizeTable[s]; ok {
		return tokens
	}
	return sizeTable[SizeMedium]
}

func merge(layers ...Tokens) Tokens {
	total := 0
	for _, layer := range layers {
		total += len(layer)
	}
	out := make(Tokens, 0, total)
	for _, layer := range layers {
		out = append(out, layer...)
	}
	return out
}
