package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy

	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// Sanitize cleans untrusted markup so it can be interpolated into a view.
// Formatting elements and safe links survive; scripts, inline event handler
// attributes and the data-flux-* binding attributes are removed.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return contentSanitizer().Sanitize(trimmed)
}

// StripTags removes every element from raw and keeps only its escaped text.
func StripTags(raw string) string {
	if raw == "" {
		return ""
	}
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize(raw)
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowElements("span", "label")
		contentPolicy = policy
	})
	return contentPolicy
}
