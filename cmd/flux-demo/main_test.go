package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-flux/internal/prompt"
	"github.com/goliatone/go-flux/pkg/state"
)

func TestRunOnce(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), config{app: "counter", once: true}, &prompt.Scripted{}, &out, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "<h1>Count: 0</h1>") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Reset") {
		t.Fatalf("reset button should be hidden at zero")
	}
}

func TestRunUnknownApp(t *testing.T) {
	err := run(context.Background(), config{app: "nope", once: true}, &prompt.Scripted{}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unknown app") {
		t.Fatalf("expected unknown app error, got %v", err)
	}
}

func TestCounterSession(t *testing.T) {
	driver := &prompt.Scripted{Answers: []prompt.Answer{
		{Choice: "2. button +"},
		{Choice: "2. button +"},
		{Choice: "1. button -"},
		{Choice: quitChoice},
	}}
	var out bytes.Buffer
	if err := run(context.Background(), config{app: "counter"}, driver, &out, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "-- count is 2") || !strings.HasSuffix(got, "-- count is 1\n") {
		t.Fatalf("unexpected transcript:\n%s", got)
	}
	if !strings.Contains(got, `onclick="reset()"`) {
		t.Fatalf("reset button should appear once the count moves")
	}
}

func TestCounterStartsFromStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.json")
	if err := os.WriteFile(path, []byte(`{"count": 7}`), 0o644); err != nil {
		t.Fatalf("write state: %v", err)
	}
	var out bytes.Buffer
	if err := run(context.Background(), config{app: "counter", stateFile: path, once: true}, &prompt.Scripted{}, &out, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Count: 7") {
		t.Fatalf("state file not applied:\n%s", out.String())
	}
}

func TestTodoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	if err := os.WriteFile(path, []byte("title: Groceries\ntodos:\n  - milk\n"), 0o644); err != nil {
		t.Fatalf("write state: %v", err)
	}

	driver := &prompt.Scripted{Answers: []prompt.Answer{
		{Choice: `1. input #new-todo ("")`},
		{Text: "eggs & ham"},
		{Yes: true},
		{Choice: "2. checkbox [ ] milk"},
	}}
	var out, logs bytes.Buffer
	cfg := config{app: "todo", stateFile: path, verbose: true}
	if err := run(context.Background(), cfg, driver, &out, &logs); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "<h1>Groceries</h1>") {
		t.Fatalf("title missing:\n%s", got)
	}
	if !strings.Contains(got, "<span>eggs &amp; ham</span>") {
		t.Fatalf("new item should be rendered escaped:\n%s", got)
	}
	if !strings.HasSuffix(got, "-- 1 of 2 remaining\n") {
		t.Fatalf("unexpected final status:\n%s", got)
	}
	if !strings.Contains(logs.String(), `added "eggs & ham"`) {
		t.Fatalf("bus subscriber should log the new item, got %q", logs.String())
	}
}

func TestTodoViewEmpty(t *testing.T) {
	got := todoView(state.State{"title": "<b>"})
	if !strings.Contains(got, "<p>Nothing to do.</p>") {
		t.Fatalf("empty list placeholder missing: %s", got)
	}
	if !strings.Contains(got, "<h1>&lt;b&gt;</h1>") {
		t.Fatalf("title should be escaped: %s", got)
	}
}

func TestTodoItemsAcceptsStringsAndMaps(t *testing.T) {
	items := todoItems(state.State{"todos": []any{"a", map[string]any{"text": "b", "done": true}, 3}})
	want := []todoItem{{Text: "a"}, {Text: "b", Done: true}, {Text: "3"}}
	if len(items) != len(want) {
		t.Fatalf("got %d items", len(items))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestBundledTemplatesMatchGoViews(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	contents := "count: 3\ntitle: Chores & more\ndraft: sweep\ntodos:\n  - dishes\n  - text: laundry\n    done: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write state: %v", err)
	}

	for _, name := range demoNames() {
		t.Run(name, func(t *testing.T) {
			var goOut, tplOut bytes.Buffer
			base := config{app: name, stateFile: path, once: true}
			if err := run(context.Background(), base, &prompt.Scripted{}, &goOut, &bytes.Buffer{}); err != nil {
				t.Fatalf("run go views: %v", err)
			}
			base.templates = builtinTemplates
			if err := run(context.Background(), base, &prompt.Scripted{}, &tplOut, &bytes.Buffer{}); err != nil {
				t.Fatalf("run template views: %v", err)
			}
			if diff := cmp.Diff(goOut.String(), tplOut.String()); diff != "" {
				t.Fatalf("template output differs from Go view (-go +template):\n%s", diff)
			}
		})
	}
}

func TestTodoSessionWithTemplates(t *testing.T) {
	driver := &prompt.Scripted{Answers: []prompt.Answer{
		{Choice: `1. input #new-todo ("")`},
		{Text: "milk"},
		{Yes: true},
		{Choice: "2. checkbox [ ] milk"},
	}}
	var out bytes.Buffer
	cfg := config{app: "todo", templates: builtinTemplates}
	if err := run(context.Background(), cfg, driver, &out, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasSuffix(out.String(), "-- 0 of 1 remaining\n") {
		t.Fatalf("unexpected transcript:\n%s", out.String())
	}
}

func TestTemplatesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "counter.tpl"), []byte(`<b>{{ count }}</b>`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	var out bytes.Buffer
	if err := run(context.Background(), config{app: "counter", templates: dir, once: true}, &prompt.Scripted{}, &out, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "<b>0</b>\n") {
		t.Fatalf("directory template not used:\n%s", out.String())
	}

	if err := run(context.Background(), config{app: "todo", templates: dir, once: true}, &prompt.Scripted{}, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected an error for a missing todo template")
	}
}
