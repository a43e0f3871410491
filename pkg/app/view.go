package app

import (
	"fmt"

	"github.com/goliatone/go-flux/pkg/render/template"
	"github.com/goliatone/go-flux/pkg/state"
)

// View computes the complete markup for a state.
type View func(s state.State) string

// Component marks a function as a view. It returns view unchanged and exists
// so nested view helpers read the same as the root view.
func Component(view View) View {
	return view
}

type viewFunc func(s state.State) (string, error)

func infallible(view View) viewFunc {
	return func(s state.State) (string, error) {
		return view(s), nil
	}
}

func templateView(renderer template.TemplateRenderer, name string) viewFunc {
	return func(s state.State) (string, error) {
		out, err := renderer.RenderTemplate(name, map[string]any(s))
		if err != nil {
			return "", fmt.Errorf("app: render view %q: %w", name, err)
		}
		return out, nil
	}
}
