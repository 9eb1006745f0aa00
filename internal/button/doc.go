// Package button builds the storefront's configurable button control.
//
// A Config combines an output kind with four style axes. Build resolves the
// style to class tokens with Resolve, picks a materialisation plan with
// Select, and returns a Result that either holds a Node or is Empty:
//
//	res := button.Build(button.Config{
//		Kind:    button.ButtonKind{},
//		Style:   button.Style{Color: button.ColorSuccess, Size: button.SizeSmall},
//		Content: g.Text("Buy"),
//	})
//
// Style precedence is fixed. Base and size tokens are always present, a
// variant replaces the colour tokens, a shape only adds, and caller classes
// come last.
//
// The output kind is a closed set: LinkKind, ButtonKind and InputKind. Only
// InputKind carries a subtype, and it must be button, submit or reset;
// anything else builds to Empty with ErrInvalidDiscriminator.
//
// Anchors have no disabled state. A disabled LinkKind is rendered inert: no
// href, aria-disabled and tabindex -1, its handler dropped, and the result
// carries ErrDisabledLink as a warning.
package button
