package handlers

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-flux/pkg/dom"
)

// Declarative binding attributes. Their values name a handler in a Registry.
const (
	InputAttr    = "data-flux-input"
	KeypressAttr = "data-flux-keypress"
)

// Binding pairs a declarative attribute with the native event its handler is
// attached for.
type Binding struct {
	Attr  string
	Event string
}

// Bindings lists the declarative attributes scanned after every render.
var Bindings = []Binding{
	{Attr: InputAttr, Event: dom.EventInput},
	{Attr: KeypressAttr, Event: dom.EventKeypress},
}

// Default is the process-wide registry, the equivalent of publishing a
// handler under a global name.
var Default = New()

// Registry maps handler names to listeners. Names are case sensitive and
// trimmed of surrounding whitespace. Lookups happen at bind time, so a name
// may be registered after the markup that references it was written.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]dom.EventListener
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]dom.EventListener),
	}
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for name, fn := range r.handlers {
		cloned.handlers[name] = fn
	}
	return cloned
}

// Register associates fn with name. Existing entries are replaced.
func (r *Registry) Register(name string, fn dom.EventListener) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("handlers: handler name is required")
	}
	if fn == nil {
		return fmt.Errorf("handlers: handler for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[name] = fn
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying setup code.
func (r *Registry) MustRegister(name string, fn dom.EventListener) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Unregister removes name; it is a no-op when absent.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, normalize(name))
}

// Lookup fetches a handler by name.
func (r *Registry) Lookup(name string) (dom.EventListener, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.handlers[normalize(name)]
	return fn, ok
}

// Names returns a sorted slice of registered handler names.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Bind scans the descendants of root for every declarative binding attribute
// and attaches the named handlers. Names missing from the registry attach
// nothing. It returns how many listeners were attached.
func (r *Registry) Bind(root *dom.Element) (int, error) {
	if root == nil {
		return 0, nil
	}
	attached := 0
	for _, binding := range Bindings {
		elements, err := root.QuerySelectorAll("[" + binding.Attr + "]")
		if err != nil {
			return attached, err
		}
		for _, el := range elements {
			fn, ok := r.Lookup(el.Attr(binding.Attr))
			if !ok {
				continue
			}
			el.AddEventListener(binding.Event, fn)
			attached++
		}
	}
	return attached, nil
}

func normalize(name string) string {
	return strings.TrimSpace(name)
}
