package site

import (
	"errors"
	"sync/atomic"

	"github.com/alexisbeaulieu97/storefront/internal/button"
	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	sferrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

var (
	// ErrUnknownAction is returned for a name no control was registered under.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInertAction is returned when the control exists but activation does
	// not reach a handler: it is disabled, a disabled link, or Empty.
	ErrInertAction = errors.New("control is inert")
)

type action struct {
	spec   config.ButtonSpec
	result button.Result
	count  atomic.Int64
}

// Actions holds the named controls the site can activate over HTTP. It is
// built once; only the activation counters change afterwards.
type Actions struct {
	order   []string
	entries map[string]*action
	log     *logger.Logger
}

// BuiltinActions are the controls the pages themselves rely on.
func BuiltinActions() []config.ButtonSpec {
	return []config.ButtonSpec{
		{Name: "subscribe", As: "input", Type: "submit", Value: "Subscribe", Color: "success"},
	}
}

// NewActions builds every spec once. Builtins win over gallery entries with
// the same name.
func NewActions(log *logger.Logger, builtins, gallery []config.ButtonSpec) *Actions {
	a := &Actions{entries: make(map[string]*action), log: log}
	for _, spec := range builtins {
		a.add(spec)
	}
	for _, spec := range gallery {
		if _, exists := a.entries[spec.Name]; exists {
			log.WithFields(map[string]any{"action": spec.Name}).Warn(nil, "gallery entry shadowed by builtin action")
			continue
		}
		a.add(spec)
	}
	return a
}

func (a *Actions) add(spec config.ButtonSpec) {
	entry := &action{spec: spec}
	fields := map[string]any{"action": spec.Name}

	result, warnings := spec.Build(func() {
		n := entry.count.Add(1)
		a.log.WithFields(map[string]any{"action": spec.Name, "count": n}).Info("control activated")
	})
	entry.result = result

	for _, w := range warnings {
		a.log.WithFields(fields).Warn(w, "button spec adjusted")
	}
	for _, w := range result.Warnings() {
		a.log.WithFields(fields).Warn(w, "button rendered with a caveat")
	}
	if result.Empty() {
		a.log.WithFields(fields).Warn(result.Reason(), "button builds to nothing")
	}

	a.order = append(a.order, spec.Name)
	a.entries[spec.Name] = entry
}

// Names lists the registered actions in registration order.
func (a *Actions) Names() []string {
	return append([]string(nil), a.order...)
}

// Spec returns the declarative spec of the named action.
func (a *Actions) Spec(name string) (config.ButtonSpec, bool) {
	entry, ok := a.entries[name]
	if !ok {
		return config.ButtonSpec{}, false
	}
	return entry.spec, true
}

// Result returns the built control for name.
func (a *Actions) Result(name string) (button.Result, bool) {
	entry, ok := a.entries[name]
	if !ok {
		return button.Result{}, false
	}
	return entry.result, true
}

// Activate delivers one activation event to the named control.
func (a *Actions) Activate(name string) error {
	entry, ok := a.entries[name]
	if !ok {
		return sferrors.NewActionError(name, ErrUnknownAction)
	}
	node, ok := entry.result.Node()
	if !ok || !node.Activate() {
		return sferrors.NewActionError(name, ErrInertAction)
	}
	return nil
}

// Count reports how many times the named control has been activated.
func (a *Actions) Count(name string) int64 {
	entry, ok := a.entries[name]
	if !ok {
		return 0
	}
	return entry.count.Load()
}
