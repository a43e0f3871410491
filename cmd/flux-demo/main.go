package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/goliatone/go-flux/internal/prompt"
	"github.com/goliatone/go-flux/pkg/dom"
	"github.com/goliatone/go-flux/pkg/eventbus"
	"github.com/goliatone/go-flux/pkg/render/template"
	"github.com/goliatone/go-flux/pkg/render/template/pongo"
	"github.com/goliatone/go-flux/pkg/script"
	"github.com/goliatone/go-flux/pkg/state"
)

const page = `<!DOCTYPE html><html><head><title>flux demo</title></head><body><div id="app"></div></body></html>`

// builtinTemplates selects the templates shipped with the binary.
const builtinTemplates = "builtin"

//go:embed templates/*.tpl
var bundled embed.FS

type config struct {
	app       string
	stateFile string
	templates string
	once      bool
	verbose   bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.app, "app", "counter", "demo to run ("+strings.Join(demoNames(), "|")+")")
	flag.StringVar(&cfg.stateFile, "state", "", "initial state file (.yaml, .yml or .json)")
	flag.StringVar(&cfg.templates, "templates", "", "render views from <app>.tpl templates in this directory ("+builtinTemplates+" for the bundled ones)")
	flag.BoolVar(&cfg.once, "once", false, "render once and exit")
	flag.BoolVar(&cfg.verbose, "v", false, "log lifecycle messages to stderr")
	flag.Parse()

	if !cfg.once && !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		cfg.once = true
	}

	if err := run(context.Background(), cfg, prompt.NewSurvey(), os.Stdout, os.Stderr); err != nil {
		log.Fatalf("flux-demo: %v", err)
	}
}

func run(ctx context.Context, cfg config, driver prompt.Driver, stdout, stderr io.Writer) error {
	factory, ok := demos[cfg.app]
	if !ok {
		return fmt.Errorf("unknown app %q (want one of %s)", cfg.app, strings.Join(demoNames(), ", "))
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger = log.New(stderr, "flux-demo: ", log.Ltime)
	}

	bus := eventbus.New()
	unsubscribe := bus.Subscribe(TodoAdded, func(data any) error {
		logger.Printf("added %q", data)
		return nil
	})
	defer unsubscribe()

	views, err := loadViews(cfg.templates)
	if err != nil {
		return err
	}
	d, err := factory(demoEnv{bus: bus, logger: logger, views: views})
	if err != nil {
		return err
	}

	initial := state.Clone(d.defaults)
	if cfg.stateFile != "" {
		loaded, err := state.LoadFile(cfg.stateFile)
		if err != nil {
			return err
		}
		initial.Merge(loaded)
	}
	if d.normalize != nil {
		d.normalize(initial)
	}

	doc, err := dom.ParseString(page)
	if err != nil {
		return err
	}
	doc.SetScriptHost(script.New(d.registry, script.WithGlobal("render", d.app.Render)))

	if _, err := d.app.MountSelector(doc, "#app", initial); err != nil {
		return err
	}

	s := &session{doc: doc, demo: d, driver: driver, out: stdout}
	s.print()
	if cfg.once {
		return nil
	}
	return s.run(ctx)
}

// loadViews returns nil when views are written in Go.
func loadViews(source string) (template.TemplateRenderer, error) {
	switch source = strings.TrimSpace(source); source {
	case "":
		return nil, nil
	case builtinTemplates:
		files, err := fs.Sub(bundled, "templates")
		if err != nil {
			return nil, err
		}
		return pongo.New(pongo.WithFS(files))
	default:
		return pongo.New(pongo.WithDir(source))
	}
}
