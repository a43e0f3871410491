// Package pongo implements template.TemplateRenderer with pongo2, so root
// views can live in template files instead of Go string building.
//
// Templates are Django-style and autoescaped. View data is the application
// state: string-keyed maps whose values are the scalars, []any and
// map[string]any that Go code and the YAML/JSON state loaders produce. Other
// data shapes are rejected rather than guessed at.
package pongo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-flux/pkg/markup"
	"github.com/goliatone/go-flux/pkg/render/template"
)

// DefaultExtension is appended to template names that carry none.
const DefaultExtension = ".tpl"

// ErrUnsupportedData is returned for view data that is not a string-keyed map.
var ErrUnsupportedData = errors.New("pongo: view data must be a string-keyed map")

// Option configures the engine before construction.
type Option func(*Engine)

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(e *Engine) {
		if files != nil {
			e.files = files
		}
	}
}

// WithDir loads templates from a directory on disk.
func WithDir(dir string) Option {
	return func(e *Engine) {
		if dir = strings.TrimSpace(dir); dir != "" {
			e.files = os.DirFS(dir)
		}
	}
}

// WithExtension overrides DefaultExtension.
func WithExtension(ext string) Option {
	return func(e *Engine) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		e.ext = ext
	}
}

// WithGlobalData seeds values every template sees.
func WithGlobalData(data map[string]any) Option {
	return func(e *Engine) {
		for key, value := range data {
			if key = strings.TrimSpace(key); key != "" {
				e.globals[key] = value
			}
		}
	}
}

// Engine renders templates through a pongo2 template set. Compiled templates
// are cached by the set. Engines are not safe for concurrent use.
type Engine struct {
	files   fs.FS
	ext     string
	globals pongo2.Context
	set     *pongo2.TemplateSet
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an engine. WithFS or WithDir is required.
func New(options ...Option) (*Engine, error) {
	e := &Engine{ext: DefaultExtension, globals: pongo2.Context{}}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.files == nil {
		return nil, errors.New("pongo: no template source, use WithFS or WithDir")
	}

	e.set = pongo2.NewSet("flux", pongo2.NewFSLoader(e.files))
	e.set.Globals = e.globals
	registerBuiltinFilters()
	return e, nil
}

// RenderTemplate renders the named template, appending the extension when
// name has none, and copies the output to every writer in out.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tmpl, err := e.set.FromCache(name)
	if err != nil {
		return "", fmt.Errorf("pongo: load %q: %w", name, err)
	}
	return e.render(tmpl, name, data, out)
}

// RenderString compiles content on the fly; nothing is cached.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse inline template: %w", err)
	}
	return e.render(tmpl, "inline template", data, out)
}

func (e *Engine) render(tmpl *pongo2.Template, label string, data any, out []io.Writer) (string, error) {
	ctx, err := viewContext(data)
	if err != nil {
		return "", err
	}
	rendered, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("pongo: execute %s: %w", label, err)
	}
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return rendered, err
		}
	}
	return rendered, nil
}

// RegisterFilter adds a filter usable as {{ value|name }} or
// {{ value|name:param }}. pongo2 keeps filters process-wide, so a name can be
// registered only once.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("pongo: filter name and function are required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already registered", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the engine's globals; later keys win.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("pongo: engine is nil")
	}
	ctx, err := viewContext(data)
	if err != nil {
		return err
	}
	e.globals.Update(ctx)
	return nil
}

// viewContext turns state-like data into a pongo2 context. Values are passed
// through as is; pongo2 resolves nested maps and slices itself.
func viewContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case map[string]any:
		return pongo2.Context(v), nil
	case pongo2.Context:
		return v, nil
	}

	// Named map types such as state.State.
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w, got %T", ErrUnsupportedData, data)
	}
	ctx := make(pongo2.Context, rv.Len())
	for iter := rv.MapRange(); iter.Next(); {
		ctx[iter.Key().String()] = iter.Value().Interface()
	}
	return ctx, nil
}

func registerBuiltinFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", func(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(strings.TrimSpace(in.String())), nil
		})
	}
	if !pongo2.FilterExists("sanitize") {
		// Sanitized markup is marked safe so autoescaping leaves it intact.
		_ = pongo2.RegisterFilter("sanitize", func(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsSafeValue(markup.Sanitize(in.String())), nil
		})
	}
}
