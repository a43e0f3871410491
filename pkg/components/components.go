// Package components provides the static view helpers: pure functions that
// turn a props struct into a markup fragment.
//
// Only the fields documented as escaped are escaped. Inline handler code
// (ButtonProps.OnClick, CheckboxProps.OnChange), class names, ids, types and
// button children are emitted verbatim; callers must not route untrusted
// input into them.
package components

import (
	"strings"

	"github.com/goliatone/go-flux/pkg/handlers"
	"github.com/goliatone/go-flux/pkg/markup"
)

// ButtonProps configures Button.
type ButtonProps struct {
	// OnClick is inline handler code, e.g. "increment()".
	OnClick string
	// Children is the button's inner markup.
	Children  string
	ClassName string
	// Type defaults to "button".
	Type string
}

// InputProps configures Input.
type InputProps struct {
	// Type defaults to "text".
	Type string
	// Value and Placeholder are escaped.
	Value       string
	Placeholder string
	// OnInput and OnKeypress name handlers in a handlers.Registry; they are
	// bound after every render, not evaluated as code.
	OnInput    string
	OnKeypress string
	ClassName  string
	ID         string
}

// CheckboxProps configures Checkbox.
type CheckboxProps struct {
	Checked bool
	// OnChange is inline handler code.
	OnChange string
	// Label is escaped and rendered in a <span> when non-empty.
	Label string
}

// Button renders a <button>. The onclick attribute is omitted when OnClick is
// empty.
func Button(props ButtonProps) string {
	var b strings.Builder
	b.WriteString(`<button type="`)
	b.WriteString(orDefault(props.Type, "button"))
	b.WriteString(`" class="`)
	b.WriteString(props.ClassName)
	b.WriteString(`"`)
	writeAttr(&b, "onclick", props.OnClick)
	b.WriteString(`>`)
	b.WriteString(props.Children)
	b.WriteString(`</button>`)
	return b.String()
}

// Input renders an <input>. Handler names are emitted as the declarative
// binding attributes consumed by the application container.
func Input(props InputProps) string {
	var b strings.Builder
	b.WriteString(`<input type="`)
	b.WriteString(orDefault(props.Type, "text"))
	b.WriteString(`" value="`)
	b.WriteString(markup.Escape(props.Value))
	b.WriteString(`" placeholder="`)
	b.WriteString(markup.Escape(props.Placeholder))
	b.WriteString(`" class="`)
	b.WriteString(props.ClassName)
	b.WriteString(`" id="`)
	b.WriteString(props.ID)
	b.WriteString(`"`)
	writeAttr(&b, handlers.InputAttr, props.OnInput)
	writeAttr(&b, handlers.KeypressAttr, props.OnKeypress)
	b.WriteString(` />`)
	return b.String()
}

// Checkbox renders a checkbox wrapped in a <label>.
func Checkbox(props CheckboxProps) string {
	var b strings.Builder
	b.WriteString(`<label><input type="checkbox"`)
	if props.Checked {
		b.WriteString(` checked`)
	}
	writeAttr(&b, "onchange", props.OnChange)
	b.WriteString(` />`)
	if props.Label != "" {
		b.WriteString(`<span>`)
		b.WriteString(markup.Escape(props.Label))
		b.WriteString(`</span>`)
	}
	b.WriteString(`</label>`)
	return b.String()
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(` `)
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteString(`"`)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
