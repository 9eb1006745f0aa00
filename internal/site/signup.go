package site

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/storefront/internal/config"
	sferrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// SignUpForm is the registration form payload.
type SignUpForm struct {
	Email    string `form:"email" validate:"required,email,max=254"`
	Password string `form:"password" validate:"required,min=8,max=128"`
}

// SubscribeForm is the newsletter form on the home page.
type SubscribeForm struct {
	Email string `form:"email" validate:"required,email,max=254"`
}

// Validate checks the form with the shared validator.
func (f SignUpForm) Validate() error {
	return validateForm(f)
}

// Validate checks the form with the shared validator.
func (f SubscribeForm) Validate() error {
	return validateForm(f)
}

func validateForm(form any) error {
	err := config.GetValidator().Struct(form)
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return sferrors.NewValidationError("form", err.Error(), err)
	}
	field := strings.ToLower(ves[0].Field())
	return sferrors.NewValidationError(field, formMessage(field, ves[0].Tag()), err)
}

func formMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("%s is too short", field)
	case "max":
		return fmt.Sprintf("%s is too long", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
