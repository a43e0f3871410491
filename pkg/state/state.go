// Package state provides the flat key/value state an application renders
// from, the reactive wrapper that re-renders on assignment, computed values,
// and loaders for initial state documents.
package state

import (
	"fmt"
	"maps"
	"strconv"
)

// State is a flat key/value mapping without schema. It is a reference type:
// every holder of the same State sees the same mutations.
type State map[string]any

// Clone returns a shallow copy of initial. Nil input yields an empty state.
func Clone(initial State) State {
	out := make(State, len(initial))
	maps.Copy(out, initial)
	return out
}

// Merge shallow-overwrites the keys present in partial. Keys missing from
// partial are left untouched; nothing is ever removed.
func (s State) Merge(partial State) {
	maps.Copy(s, partial)
}

// Get returns the value stored under key.
func (s State) Get(key string) any {
	return s[key]
}

// String returns the value under key as a string. Non-string values use
// their fmt.Sprint form; missing keys yield "".
func (s State) String(key string) string {
	switch v := s[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the value under key as an int. Numeric kinds produced by the
// YAML and JSON decoders are converted; anything else yields 0.
func (s State) Int(key string) int {
	switch v := s[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool returns the value under key as a bool.
func (s State) Bool(key string) bool {
	v, _ := s[key].(bool)
	return v
}

// Slice returns the value under key as a []any, or nil.
func (s State) Slice(key string) []any {
	v, _ := s[key].([]any)
	return v
}
