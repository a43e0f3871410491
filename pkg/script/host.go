// Package script evaluates inline handler attributes such as
// onclick="increment()" with an embedded JavaScript interpreter (goja).
//
// The handler registry plays the role of the page's global scope: before each
// evaluation the registry's current names are defined as global functions and
// names removed since the previous evaluation are deleted again. Hosts are not
// safe for concurrent use.
package script

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/goliatone/go-flux/pkg/dom"
	"github.com/goliatone/go-flux/pkg/handlers"
)

// Option configures a Host.
type Option func(*Host)

// WithGlobal seeds a global binding available to every evaluation.
func WithGlobal(name string, value any) Option {
	return func(h *Host) {
		if name = strings.TrimSpace(name); name != "" {
			h.globals[name] = value
		}
	}
}

// Host implements dom.ScriptHost on top of a goja runtime.
type Host struct {
	vm       *goja.Runtime
	registry *handlers.Registry
	globals  map[string]any

	// defined holds the registry names bound as globals by the last sync.
	defined map[string]struct{}
	// event is the event of the innermost running evaluation.
	event *dom.Event
}

var _ dom.ScriptHost = (*Host)(nil)

// New returns a host resolving global function names through registry. A
// nil registry falls back to handlers.Default.
func New(registry *handlers.Registry, options ...Option) *Host {
	if registry == nil {
		registry = handlers.Default
	}
	h := &Host{
		vm:       goja.New(),
		registry: registry,
		globals:  make(map[string]any),
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Set defines an additional global binding. Go functions are exposed as
// callable JavaScript functions.
func (h *Host) Set(name string, value any) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("script: global name is required")
	}
	h.globals[name] = value
	return nil
}

// Eval runs code with ev exposed as the global "event". Registered handlers
// called from code receive a copy of ev whose Args hold the call arguments.
// A handler error is raised as a JavaScript exception; the evaluation error
// is returned. Evaluations may nest (a handler dispatching another event);
// the outer evaluation sees its own event again once the inner one returns.
func (h *Host) Eval(code string, ev *dom.Event) (err error) {
	if strings.TrimSpace(code) == "" {
		return nil
	}
	if ev == nil {
		ev = dom.NewEvent("")
	}
	if err := h.sync(); err != nil {
		return err
	}

	outer, outerObject := h.event, h.vm.Get("event")
	defer func() {
		h.event = outer
		if restoreErr := h.restoreEvent(outerObject); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	h.event = ev
	if err := h.vm.Set("event", eventObject(ev)); err != nil {
		return fmt.Errorf("script: define event: %w", err)
	}
	if _, err := h.vm.RunString(code); err != nil {
		return fmt.Errorf("script: eval %q: %w", code, err)
	}
	return nil
}

// sync makes the runtime's globals match the registry: stale handler names
// are deleted, extra globals and current handler names are (re)defined.
func (h *Host) sync() error {
	names := h.registry.Names()
	live := make(map[string]struct{}, len(names))
	for _, name := range names {
		live[name] = struct{}{}
	}

	global := h.vm.GlobalObject()
	for name := range h.defined {
		if _, ok := live[name]; ok {
			continue
		}
		if err := global.Delete(name); err != nil {
			return fmt.Errorf("script: delete %q: %w", name, err)
		}
	}
	for name, value := range h.globals {
		if err := h.vm.Set(name, value); err != nil {
			return fmt.Errorf("script: define %q: %w", name, err)
		}
	}
	for _, name := range names {
		if err := h.vm.Set(name, h.bridge(name)); err != nil {
			return fmt.Errorf("script: define %q: %w", name, err)
		}
	}
	h.defined = live
	return nil
}

func (h *Host) restoreEvent(previous goja.Value) error {
	if previous == nil {
		return h.vm.GlobalObject().Delete("event")
	}
	return h.vm.Set("event", previous)
}

// bridge resolves name when called, so a handler replaced or removed between
// evaluations is never reached through an old binding.
func (h *Host) bridge(name string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		fn, ok := h.registry.Lookup(name)
		if !ok {
			panic(h.vm.NewTypeError("%s is not a registered handler", name))
		}
		ev := h.event
		if ev == nil {
			ev = dom.NewEvent("")
		}

		callEvent := *ev
		callEvent.Args = nil
		for _, arg := range call.Arguments {
			callEvent.Args = append(callEvent.Args, arg.Export())
		}
		if err := fn(&callEvent); err != nil {
			panic(h.vm.NewGoError(err))
		}
		if callEvent.Stopped() {
			ev.StopPropagation()
		}
		return goja.Undefined()
	}
}

func eventObject(ev *dom.Event) map[string]any {
	return map[string]any{
		"type":    ev.Type,
		"value":   ev.Value,
		"key":     ev.Key,
		"checked": ev.Checked,
	}
}
