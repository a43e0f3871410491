package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle to an element node of a Document. Handles are cheap and
// several may point at the same node; compare them with Is.
type Element struct {
	doc  *Document
	node *html.Node
}

// Node exposes the underlying parse tree node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// Is reports whether both handles refer to the same node.
func (e *Element) Is(other *Element) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}
	return e.node == other.node
}

// TagName returns the lower-case tag name.
func (e *Element) TagName() string {
	return e.node.Data
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.Attr("id")
}

// Attr returns the attribute value, or "" when absent.
func (e *Element) Attr(name string) string {
	value, _ := e.LookupAttr(name)
	return value
}

// LookupAttr returns the attribute value and whether it is present.
func (e *Element) LookupAttr(name string) (string, bool) {
	return lookupAttr(e.node, name)
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.LookupAttr(name)
	return ok
}

// SetAttr adds or replaces an attribute.
func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes an attribute; it is a no-op when absent.
func (e *Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	kept := e.node.Attr[:0]
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			continue
		}
		kept = append(kept, attr)
	}
	e.node.Attr = kept
}

// Parent returns the parent element, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(p)
}

// Children returns the element children in order.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// Connected reports whether the element is still attached to its document.
func (e *Element) Connected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// QuerySelector returns the first descendant matching the selector.
func (e *Element) QuerySelector(selector string) (*Element, error) {
	return query(e.doc, e.node, selector)
}

// QuerySelectorAll returns every descendant matching the selector.
func (e *Element) QuerySelectorAll(selector string) ([]*Element, error) {
	return queryAll(e.doc, e.node, selector)
}

// SetInnerHTML parses markup in the context of this element and replaces all
// existing children with the result. The previous children are detached and
// every listener registered on them or their descendants is dropped.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return fmt.Errorf("dom: parse fragment for <%s>: %w", e.node.Data, err)
	}
	e.removeChildren()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// OuterHTML serializes the element including its own tag.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	_ = html.Render(&b, e.node)
	return b.String()
}

// TextContent concatenates every text node under the element.
func (e *Element) TextContent() string {
	var b strings.Builder
	collectText(&b, e.node)
	return b.String()
}

// SetTextContent replaces the children with a single text node.
func (e *Element) SetTextContent(text string) {
	e.removeChildren()
	if text == "" {
		return
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// AddEventListener attaches fn for events of the given type dispatched at
// this element or bubbling through it. Listeners run in registration order.
func (e *Element) AddEventListener(eventType string, fn EventListener) {
	if fn == nil || eventType == "" {
		return
	}
	e.doc.addListener(e.node, eventType, fn)
}

// ListenerCount returns how many listeners of the type are attached directly
// to this element.
func (e *Element) ListenerCount(eventType string) int {
	count := 0
	for _, l := range e.doc.listeners[e.node] {
		if l.eventType == eventType {
			count++
		}
	}
	return count
}

// Dispatch is shorthand for Document.Dispatch with this element as target.
func (e *Element) Dispatch(ev *Event) error {
	return e.doc.Dispatch(e, ev)
}

func (e *Element) removeChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.doc.forget(c)
		e.node.RemoveChild(c)
		c = next
	}
}

func lookupAttr(n *html.Node, name string) (string, bool) {
	name = strings.ToLower(name)
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
