package preview

import (
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/storefront/internal/button"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

var emptyStyle = lipgloss.NewStyle().Italic(true).Faint(true)

// Appliers returns the styling for a control, in the same precedence as the
// HTML class resolution: size, then palette (a variant replaces the colour),
// then shape.
func Appliers(s button.Style, disabled bool) []StyleApplier {
	appliers := []StyleApplier{Padding(s.Size)}

	switch s.Variant {
	case button.VariantOutline:
		appliers = append(appliers, Outline(s.Color))
	case button.VariantGhost:
		appliers = append(appliers, Ghost(s.Color))
	case button.VariantLink:
		appliers = append(appliers, Underlined())
	default:
		appliers = append(appliers, Solid(s.Color))
	}

	// A terminal has no corner radius; the border drawing stands in for it.
	if s.Variant == button.VariantOutline || s.Shape == button.ShapePill || s.Shape == button.ShapeSquare {
		appliers = append(appliers, Corners(s.Shape))
	}

	if disabled {
		appliers = append(appliers, Inert())
	}
	return appliers
}

// Button renders cfg for a terminal. Configurations that build to nothing
// render as a muted line carrying the reason.
func Button(theme Theme, cfg button.Config, focused bool) string {
	res := button.Build(cfg)
	if res.Empty() {
		return emptyStyle.Render(EmptyLabel(res))
	}

	node, _ := res.Node()
	appliers := Appliers(cfg.Style, node.Disabled())
	if focused {
		appliers = append(appliers, Focused())
	}
	return Apply(theme, lipgloss.NewStyle(), appliers...).Render(Label(cfg))
}

// EmptyLabel describes an Empty result.
func EmptyLabel(res button.Result) string {
	if res.Reason() == nil {
		return "(empty)"
	}
	return "(empty: " + res.Reason().Error() + ")"
}

// Label is the visible text of a control: the value of an input, otherwise
// leading, content and trailing joined by spaces.
func Label(cfg button.Config) string {
	if input, ok := cfg.Kind.(button.InputKind); ok {
		return input.Value
	}

	var parts []string
	for _, n := range []g.Node{cfg.Leading, cfg.Content, cfg.Trailing} {
		if text := plainText(n); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func plainText(n g.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(b.String(), "")))
}
