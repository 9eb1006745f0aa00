package site

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	sferrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

func defaultActions() *Actions {
	return NewActions(logger.Nop(), BuiltinActions(), config.DefaultGallery())
}

func TestActionsRegistrationOrder(t *testing.T) {
	t.Parallel()

	actions := defaultActions()
	names := actions.Names()
	require.Equal(t, "subscribe", names[0])
	require.Equal(t, "primary", names[1])
	require.Len(t, names, len(config.DefaultGallery())+1)

	names[0] = "mutated"
	require.Equal(t, "subscribe", actions.Names()[0])
}

func TestActionsBuiltinShadowsGallery(t *testing.T) {
	t.Parallel()

	gallery := []config.ButtonSpec{{Name: "subscribe", Label: "Other", As: "link", Href: "/x"}}
	actions := NewActions(logger.Nop(), BuiltinActions(), gallery)

	require.Equal(t, []string{"subscribe"}, actions.Names())
	spec, ok := actions.Spec("subscribe")
	require.True(t, ok)
	require.Equal(t, "input", spec.As)
}

func TestActionsActivate(t *testing.T) {
	t.Parallel()

	actions := defaultActions()

	require.NoError(t, actions.Activate("primary"))
	require.NoError(t, actions.Activate("primary"))
	require.Equal(t, int64(2), actions.Count("primary"))
	require.Zero(t, actions.Count("success"))
}

func TestActionsActivateInert(t *testing.T) {
	t.Parallel()

	actions := defaultActions()
	for _, name := range []string{"disabled", "disabled-link", "input-invalid"} {
		err := actions.Activate(name)
		require.ErrorIs(t, err, ErrInertAction, name)

		var actionErr *sferrors.ActionError
		require.True(t, errors.As(err, &actionErr))
		require.Equal(t, name, actionErr.Action)
		require.Zero(t, actions.Count(name))
	}
}

func TestActionsActivateUnknown(t *testing.T) {
	t.Parallel()

	err := defaultActions().Activate("nope")
	require.ErrorIs(t, err, ErrUnknownAction)
	require.Zero(t, defaultActions().Count("nope"))

	_, ok := defaultActions().Result("nope")
	require.False(t, ok)
}

func TestActionsInvalidInputBuildsEmpty(t *testing.T) {
	t.Parallel()

	res, ok := defaultActions().Result("input-invalid")
	require.True(t, ok)
	require.True(t, res.Empty())
	require.Error(t, res.Reason())
}

func TestActionsConcurrentActivation(t *testing.T) {
	t.Parallel()

	actions := defaultActions()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = actions.Activate("success")
		}()
	}
	wg.Wait()

	require.Equal(t, int64(50), actions.Count("success"))
}
