package config

import (
	"fmt"
	"strings"

	sferrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return sferrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	paths := make(map[string]int, len(cfg.Nav))
	for i, link := range cfg.Nav {
		key := strings.ToLower(link.Path)
		if prev, exists := paths[key]; exists {
			return sferrors.NewValidationError(fieldForNav(i, "path"), fmt.Sprintf("duplicates nav[%d] %q", prev, link.Path), nil)
		}
		paths[key] = i
	}

	names := make(map[string]int, len(cfg.Gallery))
	for i, spec := range cfg.Gallery {
		if prev, exists := names[spec.Name]; exists {
			return sferrors.NewValidationError(fieldForGallery(i, "name"), fmt.Sprintf("duplicate button name %q (first used by gallery[%d])", spec.Name, prev), nil)
		}
		names[spec.Name] = i

		if err := validateButtonSpec(spec, i); err != nil {
			return err
		}
	}

	return nil
}

// validateButtonSpec rejects fields that can never apply to the chosen kind.
// An input with a bad type is left alone: it builds to nothing, and the
// gallery shows that.
func validateButtonSpec(spec ButtonSpec, index int) error {
	kind := strings.ToLower(strings.TrimSpace(spec.As))

	if kind != "link" && (spec.Href != "" || spec.Target != "") {
		return sferrors.NewValidationError(fieldForGallery(index, "href"), "href and target only apply to links", nil)
	}
	if kind != "input" && spec.Type != "" {
		return sferrors.NewValidationError(fieldForGallery(index, "type"), "type only applies to inputs", nil)
	}
	if kind == "input" && (spec.Leading != "" || spec.Trailing != "") {
		return sferrors.NewValidationError(fieldForGallery(index, "leading"), "inputs cannot hold icons", nil)
	}
	return nil
}
