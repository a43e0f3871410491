// Package markup holds the string-level building blocks views are written
// with: the HTML composer, the text escaper, conditional and list helpers,
// and a sanitizer for untrusted markup.
//
// Nothing in this package escapes implicitly. Values interpolated with HTML
// land in the output verbatim; callers pass untrusted text through Escape
// (or untrusted markup through Sanitize) first.
package markup
