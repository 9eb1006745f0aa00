package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("storefront.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "storefront.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: storefront.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError(".env", 0, stdErrors.New("bad quote"))
	require.Equal(t, "parse error: .env: bad quote", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("gallery[1].as", "unknown kind", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "gallery[1].as", validationErr.Field)
	require.Contains(t, err.Error(), "unknown kind")

	require.Equal(t, "validation error: form invalid", NewValidationError("", "form invalid", nil).Error())
}

func TestRenderErrorIncludesRoute(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("write failed")
	err := NewRenderError("about", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "about", renderErr.Route)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "render error on route about: write failed", err.Error())
}

func TestActionErrorIncludesActionName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("control is inert")
	err := NewActionError("subscribe", underlying)

	var actionErr *ActionError
	require.ErrorAs(t, err, &actionErr)
	require.Equal(t, "subscribe", actionErr.Action)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[subscribe]")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var renderErr *RenderError
	var actionErr *ActionError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Empty(t, renderErr.Error())
	require.Nil(t, actionErr.Unwrap())
}
