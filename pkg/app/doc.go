// Package app implements the application container: one live state object,
// one root view, and the render cycle that ties them to a mounted element.
//
// Every Render serializes the whole view to a string, replaces the mounted
// element's content with it, and then binds the handlers named by the
// declarative data-flux-* attributes found in the new content. Nothing is
// diffed and nothing survives a render: listeners attached to the previous
// nodes by any other means are gone afterwards.
//
// The most recently mounted application is remembered process-wide so the
// package-level Render can be called without a reference to it.
package app
