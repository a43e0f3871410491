package app

import "sync"

var current struct {
	mu  sync.RWMutex
	app *App
}

func setCurrent(a *App) {
	current.mu.Lock()
	defer current.mu.Unlock()
	current.app = a
}

// Current returns the most recently mounted application, or nil when nothing
// has been mounted. The last successful mount wins; the slot is never cleared.
func Current() *App {
	current.mu.RLock()
	defer current.mu.RUnlock()
	return current.app
}

// Render re-renders the current application. It is a no-op when nothing has
// been mounted.
func Render() error {
	a := Current()
	if a == nil {
		return nil
	}
	return a.Render()
}
