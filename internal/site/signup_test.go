package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	sferrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

func TestSignUpFormValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    SignUpForm
		field   string
		message string
	}{
		{name: "valid", form: SignUpForm{Email: "ada@example.com", Password: "correct horse"}},
		{name: "missing email", form: SignUpForm{Password: "correct horse"}, field: "email", message: "email is required"},
		{name: "bad email", form: SignUpForm{Email: "ada", Password: "correct horse"}, field: "email", message: "enter a valid email address"},
		{name: "short password", form: SignUpForm{Email: "ada@example.com", Password: "short"}, field: "password", message: "password is too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.form.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *sferrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			require.Equal(t, tt.field, validationErr.Field)
			require.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestSubscribeFormValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, SubscribeForm{Email: "ada@example.com"}.Validate())

	var validationErr *sferrors.ValidationError
	require.True(t, errors.As(SubscribeForm{}.Validate(), &validationErr))
	require.Equal(t, "email", validationErr.Field)
	require.Equal(t, "email is required", validationErr.Message)
}
