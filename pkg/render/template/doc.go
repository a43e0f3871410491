// Package template defines the renderer-agnostic template interface used by
// template-backed application views. The pongo subpackage provides the
// default engine.
package template
