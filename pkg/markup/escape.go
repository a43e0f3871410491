package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Escape converts text into markup that displays as that text. The text is
// placed in a detached text node and serialized with the HTML renderer, so
// the entity set is exactly the renderer's: & ' < > " and carriage returns.
// Already escaped input is escaped again.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = html.Render(&b, &html.Node{Type: html.TextNode, Data: text})
	return b.String()
}
