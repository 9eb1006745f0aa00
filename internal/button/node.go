package button

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Node is a materialised control. It is immutable; the only side effect it
// can cause is calling the caller's handler through Activate.
type Node struct {
	plan       Plan
	classes    Tokens
	leading    g.Node
	content    g.Node
	trailing   g.Node
	onActivate func()
}

// Plan returns the materialisation plan the node was built from.
func (n Node) Plan() Plan {
	plan := n.plan
	plan.Attrs = append([]Attr(nil), n.plan.Attrs...)
	plan.Warnings = append([]error(nil), n.plan.Warnings...)
	return plan
}

// Element returns the rendered tag.
func (n Node) Element() Element { return n.plan.Element }

// Classes returns the final class tokens, derived tokens first.
func (n Node) Classes() Tokens { return append(Tokens(nil), n.classes...) }

// Disabled reports whether the control renders as non interactive.
func (n Node) Disabled() bool { return n.plan.Disabled }

// Interactive reports whether activation reaches a handler.
func (n Node) Interactive() bool { return n.plan.Interactive && n.onActivate != nil }

// Activate simulates one discrete activation event. It calls the handler
// exactly once and returns true, or returns false when the control is inert.
func (n Node) Activate() bool {
	if !n.Interactive() {
		return false
	}
	n.onActivate()
	return true
}

// Render writes the node as HTML.
func (n Node) Render(w io.Writer) error {
	children := make([]g.Node, 0, len(n.plan.Attrs)+4)
	for _, attr := range n.plan.Attrs {
		if attr.Boolean {
			children = append(children, g.Attr(attr.Name))
			continue
		}
		children = append(children, g.Attr(attr.Name, attr.Value))
	}
	children = append(children, h.Class(n.classes.String()))

	if n.plan.Children {
		if n.leading != nil {
			children = append(children, h.Span(h.Class("mr-2"), n.leading))
		}
		if n.content != nil {
			children = append(children, n.content)
		}
		if n.trailing != nil {
			children = append(children, h.Span(h.Class("ml-2"), n.trailing))
		}
	}

	return g.El(string(n.plan.Element), children...).Render(w)
}

// HTML renders the node to a string. Render errors only come from
// caller-supplied content and yield an empty string.
func (n Node) HTML() string {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return ""
	}
	return b.String()
}
