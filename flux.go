// Package flux is the single-import surface of the library: the application
// container, state helpers, markup composition, static view helpers and the
// process-wide event bus.
//
//	counter := flux.CreateApp(func(s flux.State) string {
//		return flux.HTML([]string{"<h1>", "</h1>", ""},
//			s.Int("count"),
//			flux.Button(flux.ButtonProps{OnClick: "increment()", Children: "+"}),
//		)
//	})
//	counter.MountSelector(doc, "#app", flux.State{"count": 0})
package flux

import (
	"io/fs"

	"github.com/goliatone/go-flux/pkg/app"
	"github.com/goliatone/go-flux/pkg/components"
	"github.com/goliatone/go-flux/pkg/dom"
	"github.com/goliatone/go-flux/pkg/eventbus"
	"github.com/goliatone/go-flux/pkg/handlers"
	"github.com/goliatone/go-flux/pkg/markup"
	"github.com/goliatone/go-flux/pkg/render/template"
	"github.com/goliatone/go-flux/pkg/render/template/pongo"
	"github.com/goliatone/go-flux/pkg/script"
	"github.com/goliatone/go-flux/pkg/state"
)

// App aliases app.App so callers only import the root package.
type App = app.App

// State aliases the flat application state.
type State = state.State

// View aliases app.View.
type View = app.View

// Reactive aliases the assignment-intercepting state wrapper.
type Reactive = state.Reactive

// Event and EventListener alias the document event types handlers receive.
type (
	Event         = dom.Event
	EventListener = dom.EventListener
)

// Prop types for the static view helpers.
type (
	ButtonProps   = components.ButtonProps
	InputProps    = components.InputProps
	CheckboxProps = components.CheckboxProps
)

// ErrMountTargetNotFound is returned when a mount selector matches nothing.
var ErrMountTargetNotFound = app.ErrMountTargetNotFound

// EventBus is the process-wide publish/subscribe registry.
var EventBus = eventbus.Default

// CreateApp builds an application around root. Handlers resolve through
// handlers.Default unless app.WithHandlers says otherwise.
func CreateApp(root View, options ...app.Option) *App {
	return app.New(root, options...)
}

// CreateTemplateApp builds an application whose root view is the named
// template, rendered with the state as its context.
func CreateTemplateApp(renderer template.TemplateRenderer, name string, options ...app.Option) *App {
	return app.NewTemplate(renderer, name, options...)
}

// NewTemplateEngine returns a pongo2 engine reading templates from files.
func NewTemplateEngine(files fs.FS, options ...pongo.Option) (*pongo.Engine, error) {
	return pongo.New(append([]pongo.Option{pongo.WithFS(files)}, options...)...)
}

// Render re-renders the most recently mounted application. It does nothing
// when no application has been mounted.
func Render() error {
	return app.Render()
}

// CreateState wraps a copy of initial so that every Set calls onUpdate.
func CreateState(initial State, onUpdate state.UpdateFunc) *Reactive {
	return state.NewReactive(initial, onUpdate)
}

// NewState returns a shallow copy of initial.
func NewState(initial State) State {
	return state.Clone(initial)
}

// Computed returns a value recomputed from fn on every read.
func Computed[T any](fn func() T) *state.Computed[T] {
	return state.NewComputed(fn)
}

// HTML interleaves fragments with values. See markup.HTML.
func HTML(fragments []string, values ...any) string {
	return markup.HTML(fragments, values...)
}

// When returns trueBranch when cond holds, otherwise the optional falseBranch.
func When(cond bool, trueBranch string, falseBranch ...string) string {
	return markup.When(cond, trueBranch, falseBranch...)
}

// Each renders every item and concatenates the results.
func Each[T any](items []T, render func(T) string) string {
	return markup.Each(items, render)
}

// Escape makes text safe for HTML text and attribute contexts.
func Escape(text string) string {
	return markup.Escape(text)
}

// Component returns view unchanged.
func Component(view View) View {
	return app.Component(view)
}

// Button renders a <button> whose onclick runs props.OnClick.
func Button(props ButtonProps) string { return components.Button(props) }

// Input renders an <input> carrying the declarative handler bindings.
func Input(props InputProps) string { return components.Input(props) }

// Checkbox renders a labelled checkbox whose onchange runs props.OnChange.
func Checkbox(props CheckboxProps) string { return components.Checkbox(props) }

// Handle registers fn in the default handler registry, making it reachable
// from declarative attributes and inline handlers.
func Handle(name string, fn EventListener) error {
	return handlers.Default.Register(name, fn)
}

// NewScriptHost returns an inline handler host over the default registry with
// a global render() bound to Render.
func NewScriptHost(options ...script.Option) *script.Host {
	options = append([]script.Option{script.WithGlobal("render", Render)}, options...)
	return script.New(handlers.Default, options...)
}
