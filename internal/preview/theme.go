package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/storefront/internal/button"
)

// ColourSet is a semantic colour with its on-colour and a muted shade.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Theme maps the storefront palette onto terminal colours.
type Theme struct {
	Palette map[button.Color]ColourSet
	Link    ColourSet
	Neutral ColourSet
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme uses the same hex values as the HTML palette.
func DefaultTheme() Theme {
	white := adaptive("#FFFFFF", "#FFFFFF")
	return Theme{
		Palette: map[button.Color]ColourSet{
			button.ColorPrimary:   {Base: adaptive("#5856D6", "#5856D6"), OnBase: white, Muted: adaptive("#4B49B6", "#4B49B6")},
			button.ColorSecondary: {Base: adaptive("#6B7785", "#6B7785"), OnBase: white, Muted: adaptive("#5B6571", "#5B6571")},
			button.ColorSuccess:   {Base: adaptive("#1B9E3E", "#1B9E3E"), OnBase: white, Muted: adaptive("#3DAD5B", "#3DAD5B")},
			button.ColorDanger:    {Base: adaptive("#E55353", "#E55353"), OnBase: white, Muted: adaptive("#E96D6D", "#E96D6D")},
			button.ColorWarning:   {Base: adaptive("#F9B115", "#F9B115"), OnBase: white, Muted: adaptive("#FABD38", "#FABD38")},
			button.ColorInfo:      {Base: adaptive("#3399FF", "#3399FF"), OnBase: white, Muted: adaptive("#52A8FF", "#52A8FF")},
			button.ColorLight:     {Base: adaptive("#F3F4F7", "#F3F4F7"), OnBase: white, Muted: adaptive("#F5F6F8", "#F5F6F8")},
			button.ColorDark:      {Base: adaptive("#212631", "#212631"), OnBase: adaptive("#000000", "#E2E8F0"), Muted: adaptive("#1C202A", "#1C202A")},
		},
		Link:    ColourSet{Base: adaptive("#2563EB", "#60A5FA"), OnBase: white, Muted: adaptive("#1D4ED8", "#3B82F6")},
		Neutral: ColourSet{Base: adaptive("#64748B", "#94A3B8"), OnBase: white, Muted: adaptive("#94A3B8", "#475569")},
	}
}

// colour returns the set for c, falling back to primary like the HTML palette.
func (t Theme) colour(c button.Color) ColourSet {
	if cs, ok := t.Palette[c]; ok {
		return cs
	}
	return t.Palette[button.ColorPrimary]
}

// StyleApplier modifies a lipgloss style using the theme.
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Apply runs appliers over base in order.
func Apply(theme Theme, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// Solid fills the control with its colour.
func Solid(c button.Color) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := theme.colour(c)
		return base.Background(cs.Base).Foreground(cs.OnBase).BorderForeground(cs.Base).Bold(true)
	}
}

// Outline draws a border in the control's colour without a fill.
func Outline(c button.Color) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := theme.colour(c)
		return base.Foreground(cs.Base).BorderForeground(cs.Base).Bold(true)
	}
}

// Ghost renders only the label in the control's colour.
func Ghost(c button.Color) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := theme.colour(c)
		return base.Foreground(cs.Base).BorderForeground(cs.Base).Bold(true)
	}
}

// Underlined renders the control as a hyperlink.
func Underlined() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Link.Base).BorderForeground(theme.Link.Base).Underline(true)
	}
}

// Corners picks the border drawing for a shape: square corners for square,
// rounded otherwise.
func Corners(shape button.Shape) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		switch shape {
		case button.ShapeSquare:
			return base.Border(lipgloss.NormalBorder())
		default:
			return base.Border(lipgloss.RoundedBorder())
		}
	}
}

// Padding maps a size to horizontal and vertical padding.
func Padding(size button.Size) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		switch size {
		case button.SizeMedium:
			return base.Padding(0, 2)
		case button.SizeLarge:
			return base.Padding(1, 3)
		default:
			return base.Padding(0, 1)
		}
	}
}

// Inert greys out a disabled control.
func Inert() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.
			UnsetBackground().
			Foreground(theme.Neutral.Base).
			BorderForeground(theme.Neutral.Muted).
			Faint(true)
	}
}

// Focused highlights the control under the cursor.
func Focused() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Reverse(true)
	}
}
