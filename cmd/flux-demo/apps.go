package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/goliatone/go-flux/pkg/app"
	"github.com/goliatone/go-flux/pkg/components"
	"github.com/goliatone/go-flux/pkg/dom"
	"github.com/goliatone/go-flux/pkg/eventbus"
	"github.com/goliatone/go-flux/pkg/handlers"
	"github.com/goliatone/go-flux/pkg/markup"
	"github.com/goliatone/go-flux/pkg/render/template"
	"github.com/goliatone/go-flux/pkg/state"
)

// TodoAdded is published on the bus with the new item's text.
const TodoAdded = "todo:added"

// demo bundles an application with the registry its handlers live in and a
// one-line status rendered after every action.
type demo struct {
	app      *app.App
	registry *handlers.Registry
	defaults state.State
	// normalize rewrites loaded state into the shapes the handlers store.
	normalize func(s state.State)
	status    func() string
}

// demoEnv is what every demo is built from. When views is set, root views are
// rendered from the template named after the demo instead of Go code.
type demoEnv struct {
	bus    *eventbus.Bus
	logger *log.Logger
	views  template.TemplateRenderer
}

func (env demoEnv) newApp(name string, view app.View, reg *handlers.Registry) *app.App {
	options := []app.Option{app.WithHandlers(reg), app.WithLogger(env.logger)}
	if env.views != nil {
		return app.NewTemplate(env.views, name, options...)
	}
	return app.New(app.Component(view), options...)
}

type demoFactory func(env demoEnv) (*demo, error)

var demos = map[string]demoFactory{
	"counter": newCounter,
	"todo":    newTodo,
}

func demoNames() []string {
	return []string{"counter", "todo"}
}

func counterView(s state.State) string {
	return markup.HTML([]string{`<section class="counter"><h1>Count: `, "</h1>", "", "", "</section>"},
		s.Int("count"),
		components.Button(components.ButtonProps{OnClick: "add(-1)", Children: "-"}),
		components.Button(components.ButtonProps{OnClick: "add(1)", Children: "+"}),
		markup.When(s.Int("count") != 0,
			components.Button(components.ButtonProps{OnClick: "reset()", Children: "Reset"})),
	)
}

func newCounter(env demoEnv) (*demo, error) {
	reg := handlers.New()
	a := env.newApp("counter", counterView, reg)

	err := registerAll(reg, map[string]dom.EventListener{
		"add": func(ev *dom.Event) error {
			step := 1
			if len(ev.Args) > 0 {
				step = toInt(ev.Args[0])
			}
			return a.SetState(state.State{"count": a.State().Int("count") + step})
		},
		"reset": func(*dom.Event) error {
			return a.SetState(state.State{"count": 0})
		},
	})
	if err != nil {
		return nil, err
	}

	return &demo{
		app:      a,
		registry: reg,
		defaults: state.State{"count": 0},
		normalize: func(s state.State) {
			s["count"] = s.Int("count")
		},
		status: func() string {
			return fmt.Sprintf("count is %d", a.State().Int("count"))
		},
	}, nil
}

type todoItem struct {
	Text string
	Done bool
}

// todoItems accepts both plain strings (as written in state files) and the
// {text, done} maps the handlers store.
func todoItems(s state.State) []todoItem {
	raw := s.Slice("todos")
	items := make([]todoItem, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			items = append(items, todoItem{Text: v})
		case map[string]any:
			text, _ := v["text"].(string)
			done, _ := v["done"].(bool)
			items = append(items, todoItem{Text: text, Done: done})
		default:
			items = append(items, todoItem{Text: fmt.Sprint(v)})
		}
	}
	return items
}

func storeItems(items []todoItem) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]any{"text": item.Text, "done": item.Done})
	}
	return out
}

func todoView(s state.State) string {
	items := todoItems(s)
	index := 0
	list := markup.Each(items, func(item todoItem) string {
		i := index
		index++
		return "<li>" + components.Checkbox(components.CheckboxProps{
			Checked:  item.Done,
			OnChange: fmt.Sprintf("toggle(%d)", i),
			Label:    item.Text,
		}) + "</li>"
	})

	return markup.HTML([]string{`<section class="todo"><h1>`, "</h1>", "", "</section>"},
		markup.Escape(s.String("title")),
		components.Input(components.InputProps{
			ID:          "new-todo",
			Value:       s.String("draft"),
			Placeholder: "What needs doing?",
			OnInput:     "onDraft",
			OnKeypress:  "onEnter",
		}),
		markup.When(len(items) > 0, "<ul>"+list+"</ul>", "<p>Nothing to do.</p>"),
	)
}

func newTodo(env demoEnv) (*demo, error) {
	reg := handlers.New()
	a := env.newApp("todo", todoView, reg)

	err := registerAll(reg, map[string]dom.EventListener{
		"onDraft": func(ev *dom.Event) error {
			// No render: the input already shows what was typed.
			a.State()["draft"] = ev.Value
			return nil
		},
		"onEnter": func(ev *dom.Event) error {
			text := strings.TrimSpace(ev.Value)
			if ev.Key != "Enter" || text == "" {
				return nil
			}
			items := append(todoItems(a.State()), todoItem{Text: text})
			if err := a.SetState(state.State{"todos": storeItems(items), "draft": ""}); err != nil {
				return err
			}
			return env.bus.Emit(TodoAdded, text)
		},
		"toggle": func(ev *dom.Event) error {
			if len(ev.Args) == 0 {
				return fmt.Errorf("toggle: missing item index")
			}
			items := todoItems(a.State())
			i := toInt(ev.Args[0])
			if i < 0 || i >= len(items) {
				return fmt.Errorf("toggle: index %d out of range", i)
			}
			items[i].Done = ev.Checked
			return a.SetState(state.State{"todos": storeItems(items)})
		},
	})
	if err != nil {
		return nil, err
	}

	remaining := state.NewComputed(func() int {
		n := 0
		for _, item := range todoItems(a.State()) {
			if !item.Done {
				n++
			}
		}
		return n
	})

	return &demo{
		app:      a,
		registry: reg,
		defaults: state.State{"title": "Todos", "draft": "", "todos": []any{}},
		normalize: func(s state.State) {
			s["todos"] = storeItems(todoItems(s))
		},
		status: func() string {
			return fmt.Sprintf("%d of %d remaining", remaining.Value(), len(todoItems(a.State())))
		},
	}, nil
}

func registerAll(reg *handlers.Registry, fns map[string]dom.EventListener) error {
	for name, fn := range fns {
		if err := reg.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func toInt(v any) int {
	return state.State{"v": v}.Int("v")
}
