package state

// Computed is a derived value that is recomputed on every read.
type Computed[T any] struct {
	fn func() T
}

// NewComputed wraps fn.
func NewComputed[T any](fn func() T) *Computed[T] {
	return &Computed[T]{fn: fn}
}

// Value evaluates the derivation.
func (c *Computed[T]) Value() T {
	var zero T
	if c == nil || c.fn == nil {
		return zero
	}
	return c.fn()
}
