package config

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/storefront/internal/button"
)

// Button converts the spec into a builder configuration. Unrecognised style
// values fall back to their defaults and come back as warnings; an unknown
// kind leaves Kind nil so the control builds to nothing.
func (s ButtonSpec) Button(onActivate func()) (button.Config, []error) {
	var warnings []error
	note := func(err error) {
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%s: %w", s.Name, err))
		}
	}

	color, err := button.ParseColor(s.Color)
	note(err)
	variant, err := button.ParseVariant(s.Variant)
	note(err)
	shape, err := button.ParseShape(s.Shape)
	note(err)
	size, err := button.ParseSize(s.Size)
	note(err)

	cfg := button.Config{
		Style:      button.Style{Color: color, Variant: variant, Shape: shape, Size: size},
		Disabled:   s.Disabled,
		OnActivate: onActivate,
	}
	if s.Class != "" {
		cfg.Classes = []string{s.Class}
	}
	if s.Label != "" {
		cfg.Content = g.Text(s.Label)
	}
	if s.Leading != "" {
		cfg.Leading = g.Text(s.Leading)
	}
	if s.Trailing != "" {
		cfg.Trailing = g.Text(s.Trailing)
	}

	switch strings.ToLower(strings.TrimSpace(s.As)) {
	case "link":
		cfg.Kind = button.LinkKind{Href: s.Href, Target: s.Target}
	case "button":
		cfg.Kind = button.ButtonKind{}
	case "input":
		subtype, err := button.ParseInputSubtype(s.Type)
		note(err)
		value := s.Value
		if value == "" {
			value = s.Label
		}
		cfg.Kind = button.InputKind{Subtype: subtype, Name: s.Name, Value: value}
	default:
		note(button.ErrNoKind)
	}

	return cfg, warnings
}

// Build is shorthand for converting the spec and building it.
func (s ButtonSpec) Build(onActivate func()) (button.Result, []error) {
	cfg, warnings := s.Button(onActivate)
	return button.Build(cfg), warnings
}
