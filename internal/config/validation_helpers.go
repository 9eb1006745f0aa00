package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	sferrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// convertValidationError normalizes validator errors into storefront validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return sferrors.NewValidationError(field, msg, err)
	}

	return sferrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root type and lowercases the rest, so
// Config.Gallery[2].As becomes gallery[2].as.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForGallery(index int, field string) string {
	return fmt.Sprintf("gallery[%d].%s", index, field)
}

func fieldForNav(index int, field string) string {
	return fmt.Sprintf("nav[%d].%s", index, field)
}
