// Package dom provides the in-memory document the render cycle writes into.
//
// A Document is an HTML tree parsed with golang.org/x/net/html. Elements can
// be located with CSS selectors, have their content replaced wholesale via
// SetInnerHTML, carry event listeners, and receive dispatched events that
// bubble from the target to the document root. Replacing an element's content
// detaches the previous nodes together with every listener registered on
// them, which mirrors what a browser does on an innerHTML assignment.
//
// Inline handler attributes (onclick, onchange, ...) are not Go code; they
// are passed to the document's ScriptHost, when one is configured, at
// dispatch time.
//
// Documents are not safe for concurrent use.
package dom
