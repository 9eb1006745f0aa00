package button

import "errors"

var (
	// ErrNoKind is the Empty reason when no output kind was chosen.
	ErrNoKind = errors.New("button: no output kind selected")
	// ErrInvalidDiscriminator is the Empty reason for an input whose
	// subtype is absent or not one of button, submit or reset.
	ErrInvalidDiscriminator = errors.New("button: input subtype must be button, submit or reset")
	// ErrDisabledLink is reported as a warning: anchors have no native
	// disabled state, so the link is rendered inert instead.
	ErrDisabledLink = errors.New("button: disabled has no native effect on a link; rendered inert")
	// ErrUnrecognizedStyle is returned by the parsers together with the
	// fallback value they substituted.
	ErrUnrecognizedStyle = errors.New("button: unrecognized style value")
)
