package app

import (
	"io"
	"log"

	"github.com/goliatone/go-flux/pkg/handlers"
)

// Option configures an App.
type Option func(*App)

// WithHandlers sets the registry declarative bindings are resolved against.
// The default is handlers.Default.
func WithHandlers(registry *handlers.Registry) Option {
	return func(a *App) {
		if registry != nil {
			a.handlers = registry
		}
	}
}

// WithLogger sets the logger used for lifecycle messages. The default
// discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
