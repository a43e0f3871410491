package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Native event types produced by the interaction helpers.
const (
	EventClick    = "click"
	EventChange   = "change"
	EventInput    = "input"
	EventKeypress = "keypress"
)

// Event carries a dispatched event through the propagation path.
type Event struct {
	Type string
	// Target is the element the event was dispatched at.
	Target *Element
	// CurrentTarget is the element whose handlers are currently running.
	CurrentTarget *Element
	// Value holds the control value for input and keypress events.
	Value string
	// Key holds the key for keypress events.
	Key string
	// Checked mirrors the checkbox state for click and change events.
	Checked bool
	// Args carries the arguments of a script call that invoked a Go handler.
	Args []any

	stopped bool
}

// EventListener handles a dispatched event. A non-nil error aborts the rest of
// the dispatch and is returned to whoever dispatched the event.
type EventListener func(ev *Event) error

// NewEvent returns an event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType}
}

// StopPropagation prevents the event from reaching further ancestors.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (ev *Event) Stopped() bool {
	return ev.stopped
}

// Dispatch delivers ev to target and then to each ancestor element. At every
// element the inline on<type> attribute runs first through the ScriptHost,
// followed by attached listeners in registration order. The propagation path
// is fixed before any handler runs, so handlers that re-render the tree do not
// change who receives the event.
func (d *Document) Dispatch(target *Element, ev *Event) error {
	if target == nil || ev == nil {
		return nil
	}
	ev.Target = target

	var path []*html.Node
	for n := target.node; n != nil; n = n.Parent {
		if n.Type == html.ElementNode {
			path = append(path, n)
		}
	}

	for _, n := range path {
		ev.CurrentTarget = d.wrap(n)
		if err := d.invoke(n, ev); err != nil {
			return err
		}
		if ev.stopped {
			break
		}
	}
	return nil
}

func (d *Document) invoke(n *html.Node, ev *Event) error {
	if d.scripts != nil {
		if code, ok := lookupAttr(n, "on"+ev.Type); ok && strings.TrimSpace(code) != "" {
			if err := d.scripts.Eval(code, ev); err != nil {
				return err
			}
		}
	}

	bound := append([]listener(nil), d.listeners[n]...)
	for _, l := range bound {
		if l.eventType != ev.Type {
			continue
		}
		if err := l.fn(ev); err != nil {
			return err
		}
	}
	return nil
}

// Input stores value in the element's value attribute and dispatches an input
// event carrying it.
func (d *Document) Input(el *Element, value string) error {
	if el == nil {
		return nil
	}
	el.SetAttr("value", value)
	ev := NewEvent(EventInput)
	ev.Value = value
	return d.Dispatch(el, ev)
}

// Press dispatches a keypress event for key at the element.
func (d *Document) Press(el *Element, key string) error {
	if el == nil {
		return nil
	}
	ev := NewEvent(EventKeypress)
	ev.Key = key
	ev.Value = el.Attr("value")
	return d.Dispatch(el, ev)
}

// Click dispatches a click at the element. Checkboxes toggle their checked
// attribute first and receive a change event after the click.
func (d *Document) Click(el *Element) error {
	if el == nil {
		return nil
	}
	checkbox := isCheckbox(el)
	if checkbox {
		if el.HasAttr("checked") {
			el.RemoveAttr("checked")
		} else {
			el.SetAttr("checked", "")
		}
	}

	click := NewEvent(EventClick)
	click.Checked = el.HasAttr("checked")
	if err := d.Dispatch(el, click); err != nil {
		return err
	}
	if !checkbox {
		return nil
	}

	change := NewEvent(EventChange)
	change.Checked = click.Checked
	return d.Dispatch(el, change)
}

func isCheckbox(el *Element) bool {
	return el.TagName() == "input" && strings.EqualFold(el.Attr("type"), "checkbox")
}
