package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/goliatone/go-flux/pkg/dom"
	"github.com/goliatone/go-flux/pkg/handlers"
	"github.com/goliatone/go-flux/pkg/render/template"
	"github.com/goliatone/go-flux/pkg/state"
)

// App owns a root view, the live state it renders from and, once mounted,
// the element the markup is written into. Apps are not safe for concurrent
// use.
type App struct {
	root     viewFunc
	handlers *handlers.Registry
	logger   *log.Logger

	container *dom.Element
	state     state.State
	renders   int
}

// New creates an application rendering root.
func New(root View, options ...Option) *App {
	var fn viewFunc
	if root != nil {
		fn = infallible(root)
	}
	return newApp(fn, options)
}

// NewTemplate creates an application whose root view is the named template.
// The state is passed to the template as its context.
func NewTemplate(renderer template.TemplateRenderer, name string, options ...Option) *App {
	var fn viewFunc
	if renderer != nil {
		fn = templateView(renderer, name)
	}
	return newApp(fn, options)
}

func newApp(root viewFunc, options []Option) *App {
	a := &App{
		root:     root,
		handlers: handlers.Default,
		logger:   discardLogger(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Mount binds the application to target, adopts initial as the live state
// without copying it (nil becomes an empty state), registers the application
// as current, and renders once. A nil target fails with
// ErrMountTargetNotFound and leaves the current application unchanged. When
// the first render fails the application stays mounted and is returned
// together with the error.
func (a *App) Mount(target *dom.Element, initial state.State) (*App, error) {
	if a.root == nil {
		return nil, errors.New("app: root view is required")
	}
	if target == nil {
		return nil, fmt.Errorf("%w: nil element", ErrMountTargetNotFound)
	}
	if initial == nil {
		initial = state.State{}
	}

	a.container = target
	a.state = initial
	setCurrent(a)
	a.logger.Printf("flux: mounted on <%s id=%q>", target.TagName(), target.ID())

	if err := a.Render(); err != nil {
		return a, err
	}
	return a, nil
}

// MountSelector resolves selector against doc and mounts on the first match.
// No match fails with ErrMountTargetNotFound; a malformed selector fails with
// an error wrapping dom.ErrInvalidSelector.
func (a *App) MountSelector(doc *dom.Document, selector string, initial state.State) (*App, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: %q (nil document)", ErrMountTargetNotFound, selector)
	}
	target, err := doc.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("app: mount: %w", err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %q", ErrMountTargetNotFound, selector)
	}
	return a.Mount(target, initial)
}

// Render recomputes the markup from the current state, replaces the mounted
// element's content and rebinds declarative handlers. It is a no-op before
// Mount.
func (a *App) Render() error {
	if a.container == nil {
		return nil
	}

	markup, err := a.root(a.state)
	if err != nil {
		return err
	}
	if err := a.container.SetInnerHTML(markup); err != nil {
		return fmt.Errorf("app: render: %w", err)
	}
	a.renders++

	if _, err := a.handlers.Bind(a.container); err != nil {
		return fmt.Errorf("app: bind handlers: %w", err)
	}
	return nil
}

// State returns the live state. Mutations made through it show up on the
// next render.
func (a *App) State() state.State {
	return a.state
}

// SetState shallow-merges partial into the live state and renders once.
func (a *App) SetState(partial state.State) error {
	if a.state == nil {
		a.state = state.State{}
	}
	a.state.Merge(partial)
	return a.Render()
}

// Handle registers fn under name in the application's handler registry.
func (a *App) Handle(name string, fn dom.EventListener) error {
	return a.handlers.Register(name, fn)
}

// Handlers returns the registry declarative bindings are resolved against.
func (a *App) Handlers() *handlers.Registry {
	return a.handlers
}

// Container returns the mounted element, or nil before Mount.
func (a *App) Container() *dom.Element {
	return a.container
}

// Mounted reports whether Mount succeeded.
func (a *App) Mounted() bool {
	return a.container != nil
}

// Renders returns how many renders have completed.
func (a *App) Renders() int {
	return a.renders
}
