package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrInvalidSelector is returned when a selector string cannot be compiled.
var ErrInvalidSelector = errors.New("dom: invalid selector")

const blankDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// ScriptHost evaluates the code of inline on<event> attributes. The event
// being dispatched is passed along so the code can inspect it.
type ScriptHost interface {
	Eval(code string, ev *Event) error
}

// Document owns a parsed HTML tree and the listeners attached to its nodes.
type Document struct {
	root      *html.Node
	listeners map[*html.Node][]listener
	scripts   ScriptHost
}

type listener struct {
	eventType string
	fn        EventListener
}

// NewDocument returns an empty document with a head and a body.
func NewDocument() *Document {
	doc, err := ParseString(blankDocument)
	if err != nil {
		panic(fmt.Errorf("dom: parse blank document: %w", err))
	}
	return doc
}

// Parse builds a document from an HTML stream.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node][]listener),
	}, nil
}

// ParseString builds a document from an HTML string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// SetScriptHost configures the evaluator used for inline handler attributes.
// A nil host disables inline handlers.
func (d *Document) SetScriptHost(host ScriptHost) {
	d.scripts = host
}

// ScriptHost returns the configured inline handler evaluator, if any.
func (d *Document) ScriptHost() ScriptHost {
	return d.scripts
}

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() *Element {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.wrap(c)
		}
	}
	return nil
}

// Body returns the <body> element, or nil when the document has none.
func (d *Document) Body() *Element {
	el, err := d.QuerySelector("body")
	if err != nil {
		return nil
	}
	return el
}

// QuerySelector returns the first element in document order matching the
// selector. A nil element with a nil error means nothing matched.
func (d *Document) QuerySelector(selector string) (*Element, error) {
	return query(d, d.root, selector)
}

// QuerySelectorAll returns every element matching the selector in document
// order.
func (d *Document) QuerySelectorAll(selector string) ([]*Element, error) {
	return queryAll(d, d.root, selector)
}

// String serializes the whole document.
func (d *Document) String() string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = html.Render(&b, d.root)
	return b.String()
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{doc: d, node: n}
}

func (d *Document) addListener(n *html.Node, eventType string, fn EventListener) {
	d.listeners[n] = append(d.listeners[n], listener{eventType: eventType, fn: fn})
}

// forget drops the listeners registered on n and all of its descendants.
func (d *Document) forget(n *html.Node) {
	delete(d.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

func compile(selector string) (cascadia.SelectorGroup, error) {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}
	return group, nil
}

func query(d *Document, scope *html.Node, selector string) (*Element, error) {
	group, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return d.wrap(cascadia.Query(scope, group)), nil
}

func queryAll(d *Document, scope *html.Node, selector string) ([]*Element, error) {
	group, err := compile(selector)
	if err != nil {
		return nil, err
	}
	nodes := cascadia.QueryAll(scope, group)
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out, nil
}
