package handlers

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-flux/pkg/dom"
)

func noop(*dom.Event) error { return nil }

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := New()

	if err := reg.Register("  ", noop); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register("onSearch", nil); err == nil {
		t.Fatalf("expected error for nil handler")
	}
	if err := reg.Register(" onSearch ", noop); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, ok := reg.Lookup("onSearch"); !ok {
		t.Fatalf("expected trimmed name to resolve")
	}
	if _, ok := reg.Lookup("onsearch"); ok {
		t.Fatalf("names are case sensitive")
	}

	reg.MustRegister("addTodo", noop)
	if diff := cmp.Diff([]string{"addTodo", "onSearch"}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	reg.Unregister("addTodo")
	if _, ok := reg.Lookup("addTodo"); ok {
		t.Fatalf("unregistered handler still resolves")
	}
}

func TestRegistryCloneIsolated(t *testing.T) {
	reg := New()
	reg.MustRegister("a", noop)

	cloned := reg.Clone()
	cloned.MustRegister("b", noop)

	if _, ok := reg.Lookup("b"); ok {
		t.Fatalf("clone mutation leaked into the original")
	}
	if _, ok := cloned.Lookup("a"); !ok {
		t.Fatalf("clone lost entries")
	}
}

func TestRegistryBind(t *testing.T) {
	doc, err := dom.ParseString(`<div id="app">
		<input id="search" data-flux-input="onSearch"/>
		<input id="todo" data-flux-keypress="onEnter" data-flux-input="missing"/>
	</div>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, _ := doc.QuerySelector("#app")

	reg := New()
	var seen []string
	reg.MustRegister("onSearch", func(ev *dom.Event) error {
		seen = append(seen, "search:"+ev.Value)
		return nil
	})
	reg.MustRegister("onEnter", func(ev *dom.Event) error {
		seen = append(seen, "enter:"+ev.Key)
		return nil
	})

	attached, err := reg.Bind(root)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if attached != 2 {
		t.Fatalf("expected 2 listeners attached, got %d", attached)
	}

	search, _ := doc.QuerySelector("#search")
	todo, _ := doc.QuerySelector("#todo")
	if todo.ListenerCount(dom.EventInput) != 0 {
		t.Fatalf("missing handler names must attach nothing")
	}

	if err := doc.Input(search, "go"); err != nil {
		t.Fatalf("input: %v", err)
	}
	if err := doc.Press(todo, "Enter"); err != nil {
		t.Fatalf("press: %v", err)
	}

	if diff := cmp.Diff([]string{"search:go", "enter:Enter"}, seen); diff != "" {
		t.Fatalf("handler calls mismatch (-want +got):\n%s", diff)
	}
}
