package button

import (
	"io"

	g "maragu.dev/gomponents"
)

// Config is everything a caller can say about one control for one render.
type Config struct {
	Kind     Kind
	Style    Style
	Disabled bool

	Leading  g.Node
	Content  g.Node
	Trailing g.Node

	OnActivate func()
	Classes    []string
}

// Result is either a node or Empty together with the reason nothing was
// produced. It renders as the node, or as nothing when Empty.
type Result struct {
	node   Node
	ok     bool
	reason error
}

// Node returns the built node and whether one exists.
func (r Result) Node() (Node, bool) { return r.node, r.ok }

// Empty reports whether the configuration produced nothing.
func (r Result) Empty() bool { return !r.ok }

// Reason explains an Empty result. It is nil for a built node.
func (r Result) Reason() error { return r.reason }

// Warnings lists non fatal notes about a built node, such as a disabled link
// rendered inert.
func (r Result) Warnings() []error {
	if !r.ok {
		return nil
	}
	return append([]error(nil), r.node.plan.Warnings...)
}

// Render writes the node, or nothing for an Empty result.
func (r Result) Render(w io.Writer) error {
	if !r.ok {
		return nil
	}
	return r.node.Render(w)
}

// Build turns cfg into a renderable control. Misconfiguration never panics
// and never surfaces as an error: it yields an Empty result instead.
func Build(cfg Config) Result {
	plan, err := Select(cfg.Kind, cfg.Disabled, cfg.OnActivate != nil)
	if err != nil {
		return Result{reason: err}
	}

	node := Node{
		plan:    plan,
		classes: Resolve(cfg.Style).With(cfg.Classes...),
	}
	if plan.Children {
		node.leading = cfg.Leading
		node.content = cfg.Content
		node.trailing = cfg.Trailing
	}
	if plan.Interactive {
		node.onActivate = cfg.OnActivate
	}

	return Result{node: node, ok: true}
}
