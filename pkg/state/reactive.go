package state

// UpdateFunc is invoked after every assignment to a Reactive state. It is
// usually an application's Render.
type UpdateFunc func() error

// Reactive wraps a shallow copy of a state so that each assignment runs an
// update callback. Go cannot intercept plain map writes, so assignments go
// through Set; writing to the map returned by State bypasses the callback.
type Reactive struct {
	values   State
	onUpdate UpdateFunc
}

// NewReactive copies initial and calls onUpdate after every Set. A nil
// onUpdate is allowed.
func NewReactive(initial State, onUpdate UpdateFunc) *Reactive {
	return &Reactive{
		values:   Clone(initial),
		onUpdate: onUpdate,
	}
}

// Set stores value under key, then synchronously invokes the update callback
// and returns its error. There is no batching: every call triggers one
// update.
func (r *Reactive) Set(key string, value any) error {
	r.values[key] = value
	if r.onUpdate == nil {
		return nil
	}
	return r.onUpdate()
}

// OnUpdate replaces the update callback. It lets a reactive state be created
// before the application whose Render it should call.
func (r *Reactive) OnUpdate(fn UpdateFunc) {
	r.onUpdate = fn
}

// Get reads the value under key.
func (r *Reactive) Get(key string) any {
	return r.values[key]
}

// State returns the live underlying state, suitable for mounting.
func (r *Reactive) State() State {
	return r.values
}
