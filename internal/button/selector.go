package button

// Kind is the output family of a control. Only the three kinds in this
// package implement it, so a link with an input subtype cannot be built.
type Kind interface {
	isKind()
}

// LinkKind renders an anchor styled as a button.
type LinkKind struct {
	Href   string
	Target string
}

// ButtonKind renders a native general purpose <button type="button">.
type ButtonKind struct{}

// InputKind renders an <input> whose Subtype is the required discriminator.
type InputKind struct {
	Subtype InputSubtype
	Name    string
	Value   string
}

func (LinkKind) isKind()   {}
func (ButtonKind) isKind() {}
func (InputKind) isKind()  {}

// InputSubtype is the type attribute of an input control.
type InputSubtype string

const (
	InputUnset  InputSubtype = ""
	InputButton InputSubtype = "button"
	InputSubmit InputSubtype = "submit"
	InputReset  InputSubtype = "reset"
)

// Valid reports whether s is one of the three legal subtypes.
func (s InputSubtype) Valid() bool {
	switch s {
	case InputButton, InputSubmit, InputReset:
		return true
	default:
		return false
	}
}

// Element is the concrete tag a plan materialises.
type Element string

const (
	ElementAnchor Element = "a"
	ElementButton Element = "button"
	ElementInput  Element = "input"
)

// Attr is one HTML attribute. Boolean attributes have no value.
type Attr struct {
	Name    string
	Value   string
	Boolean bool
}

// Plan is the selector's decision: which element to emit, with which
// attributes, and whether activation reaches the caller's handler.
type Plan struct {
	Element     Element
	Attrs       []Attr
	Interactive bool
	Disabled    bool
	Children    bool
	Warnings    []error
}

// Attr returns the named attribute.
func (p Plan) Attr(name string) (Attr, bool) {
	for _, attr := range p.Attrs {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attr{}, false
}

// Select decides how kind is materialised. activation reports whether the
// caller supplied a handler. It fails for a nil kind and for an input with
// an illegal subtype; no partial plan is returned in that case.
func Select(kind Kind, disabled, activation bool) (Plan, error) {
	switch k := kind.(type) {
	case LinkKind:
		return selectLink(k, disabled, activation), nil
	case *LinkKind:
		if k == nil {
			return Plan{}, ErrNoKind
		}
		return selectLink(*k, disabled, activation), nil
	case ButtonKind, *ButtonKind:
		return selectButton(disabled, activation), nil
	case InputKind:
		return selectInput(k, disabled, activation)
	case *InputKind:
		if k == nil {
			return Plan{}, ErrNoKind
		}
		return selectInput(*k, disabled, activation)
	default:
		return Plan{}, ErrNoKind
	}
}

func selectLink(k LinkKind, disabled, activation bool) Plan {
	plan := Plan{Element: ElementAnchor, Children: true}

	if disabled {
		plan.Disabled = true
		plan.Attrs = append(plan.Attrs,
			Attr{Name: "role", Value: "button"},
			Attr{Name: "aria-disabled", Value: "true"},
			Attr{Name: "tabindex", Value: "-1"},
		)
		plan.Warnings = append(plan.Warnings, ErrDisabledLink)
		return plan
	}

	href := k.Href
	if href == "" {
		href = "#"
	}
	plan.Attrs = append(plan.Attrs, Attr{Name: "href", Value: href})
	if k.Target != "" {
		plan.Attrs = append(plan.Attrs, Attr{Name: "target", Value: k.Target})
		if k.Target == "_blank" {
			plan.Attrs = append(plan.Attrs, Attr{Name: "rel", Value: "noopener noreferrer"})
		}
	}
	plan.Attrs = append(plan.Attrs, Attr{Name: "role", Value: "button"})
	plan.Interactive = activation
	return plan
}

func selectButton(disabled, activation bool) Plan {
	plan := Plan{
		Element:  ElementButton,
		Attrs:    []Attr{{Name: "type", Value: string(InputButton)}},
		Children: true,
	}
	return withDisabled(plan, disabled, activation)
}

func selectInput(k InputKind, disabled, activation bool) (Plan, error) {
	if !k.Subtype.Valid() {
		return Plan{}, ErrInvalidDiscriminator
	}

	plan := Plan{
		Element: ElementInput,
		Attrs:   []Attr{{Name: "type", Value: string(k.Subtype)}},
	}
	if k.Name != "" {
		plan.Attrs = append(plan.Attrs, Attr{Name: "name", Value: k.Name})
	}
	if k.Value != "" {
		plan.Attrs = append(plan.Attrs, Attr{Name: "value", Value: k.Value})
	}
	return withDisabled(plan, disabled, activation), nil
}

func withDisabled(plan Plan, disabled, activation bool) Plan {
	if disabled {
		plan.Disabled = true
		plan.Attrs = append(plan.Attrs, Attr{Name: "disabled", Boolean: true})
		return plan
	}
	plan.Interactive = activation
	return plan
}
