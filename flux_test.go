package flux_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-flux"
	"github.com/goliatone/go-flux/pkg/eventbus"
	"github.com/goliatone/go-flux/pkg/handlers"
	"github.com/goliatone/go-flux/pkg/testsupport"
)

func handle(t *testing.T, name string, fn flux.EventListener) {
	t.Helper()
	if err := flux.Handle(name, fn); err != nil {
		t.Fatalf("handle %q: %v", name, err)
	}
	t.Cleanup(func() { handlers.Default.Unregister(name) })
}

func TestCounterThroughFacade(t *testing.T) {
	doc := testsupport.NewDocument(t, `<div id="app"></div>`)
	doc.SetScriptHost(flux.NewScriptHost())

	counter := flux.CreateApp(flux.Component(func(s flux.State) string {
		return flux.HTML([]string{"<div><h1>Count: ", "</h1>", "</div>"},
			s.Int("count"),
			flux.Button(flux.ButtonProps{OnClick: "increment(); render()", Children: "+"}),
		)
	}))
	handle(t, "increment", func(*flux.Event) error {
		s := counter.State()
		s["count"] = s.Int("count") + 1
		return nil
	})

	if _, err := counter.MountSelector(doc, "#app", flux.State{"count": 0}); err != nil {
		t.Fatalf("mount: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := doc.Click(testsupport.MustQuery(t, doc, "#app button")); err != nil {
			t.Fatalf("click: %v", err)
		}
	}
	if got := testsupport.MustQuery(t, doc, "#app h1").TextContent(); got != "Count: 3" {
		t.Fatalf("unexpected heading %q", got)
	}
}

func TestCreateStateRendersCurrentApp(t *testing.T) {
	doc := testsupport.NewDocument(t, `<main id="root"></main>`)

	view := func(s flux.State) string {
		return flux.HTML([]string{"<p>", "</p>"}, flux.When(s.Bool("on"), "on", "off"))
	}
	store := flux.CreateState(flux.State{"on": false}, flux.Render)

	a, err := flux.CreateApp(view).MountSelector(doc, "#root", store.State())
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := store.Set("on", true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := a.Container().InnerHTML(); got != "<p>on</p>" {
		t.Fatalf("unexpected markup %q", got)
	}
}

func TestMountMissingTarget(t *testing.T) {
	doc := testsupport.NewDocument(t, `<div id="app"></div>`)
	_, err := flux.CreateApp(func(flux.State) string { return "" }).MountSelector(doc, "#does-not-exist", nil)
	if !errors.Is(err, flux.ErrMountTargetNotFound) {
		t.Fatalf("expected ErrMountTargetNotFound, got %v", err)
	}
}

func TestMarkupHelpers(t *testing.T) {
	if got := flux.HTML([]string{"<a>", "</a>"}, nil); got != "<a></a>" {
		t.Fatalf("nil should render empty, got %q", got)
	}
	if got := flux.Each[string](nil, strings.ToUpper); got != "" {
		t.Fatalf("empty list should render empty, got %q", got)
	}
	if got := flux.Each([]string{"a", "b"}, strings.ToUpper); got != "AB" {
		t.Fatalf("unexpected list output %q", got)
	}
	if got := flux.When(false, "A", "B"); got != "B" {
		t.Fatalf("unexpected branch %q", got)
	}
	if got := flux.Escape("<script>"); strings.ContainsAny(got, "<>") {
		t.Fatalf("escape left markup in %q", got)
	}
}

func TestNewStateCopies(t *testing.T) {
	initial := flux.State{"a": 1}
	copied := flux.NewState(initial)
	copied["a"] = 2
	if initial["a"] != 1 {
		t.Fatalf("NewState must not alias its input")
	}
}

func TestComputed(t *testing.T) {
	items := []string{"a"}
	count := flux.Computed(func() int { return len(items) })
	items = append(items, "b")
	if count.Value() != 2 {
		t.Fatalf("computed should re-evaluate on read")
	}
}

func TestEventBusIsShared(t *testing.T) {
	var got []any
	unsubscribe := flux.EventBus.Subscribe("flux:test", func(data any) error {
		got = append(got, data)
		return nil
	})
	defer unsubscribe()

	if err := eventbus.Default.Emit("flux:test", "hello"); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if diff := cmp.Diff([]any{"hello"}, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpersMatchComponents(t *testing.T) {
	doc := testsupport.NewDocument(t, flux.Checkbox(flux.CheckboxProps{Checked: true, Label: "done"})+
		flux.Input(flux.InputProps{Value: "x", OnInput: "onX"}))

	box := testsupport.MustQuery(t, doc, `input[type="checkbox"]`)
	if !box.HasAttr("checked") {
		t.Fatalf("checkbox should render checked")
	}
	text := testsupport.MustQuery(t, doc, "input[data-flux-input]")
	if text.Attr("data-flux-input") != "onX" {
		t.Fatalf("unexpected binding %q", text.Attr("data-flux-input"))
	}
}

func TestTemplateAppThroughFacade(t *testing.T) {
	doc := testsupport.NewDocument(t, `<div id="app"></div>`)
	engine, err := flux.NewTemplateEngine(fstest.MapFS{
		"greeting.tpl": {Data: []byte(`<p>Hello {{ name }}</p>`)},
	})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	a, err := flux.CreateTemplateApp(engine, "greeting").MountSelector(doc, "#app", flux.State{"name": "<Ada>"})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := a.SetState(flux.State{"name": "Grace"}); err != nil {
		t.Fatalf("set state: %v", err)
	}
	if got := a.Container().InnerHTML(); got != "<p>Hello Grace</p>" {
		t.Fatalf("unexpected markup %q", got)
	}
}
