package markup

import (
	"fmt"
	"strings"
)

// HTML joins literal fragments with the interleaved values, producing
// fragments[0] values[0] fragments[1] ... fragments[n]. Nil values render as
// the empty string, every other value uses its fmt.Sprint form. Each
// fragment is followed by the value at the same index, so values[len(fragments)-1]
// lands after the last fragment and values beyond len(fragments) are ignored.
func HTML(fragments []string, values ...any) string {
	var b strings.Builder
	for i, fragment := range fragments {
		b.WriteString(fragment)
		if i < len(values) {
			b.WriteString(stringify(values[i]))
		}
	}
	return b.String()
}

// When returns trueBranch when condition holds, otherwise the optional
// falseBranch (empty when omitted).
func When(condition bool, trueBranch string, falseBranch ...string) string {
	if condition {
		return trueBranch
	}
	if len(falseBranch) > 0 {
		return falseBranch[0]
	}
	return ""
}

// Each renders every item in order and concatenates the results. Nil or empty
// slices produce the empty string.
func Each[T any](items []T, render func(T) string) string {
	if len(items) == 0 || render == nil {
		return ""
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString(render(item))
	}
	return b.String()
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
