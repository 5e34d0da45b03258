package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fieldPolicyOnce sync.Once
	fieldPolicy     *bluemonday.Policy
)

// fieldSanitizer strips all markup from field content. Note fields are plain
// clinical text; anything tag-shaped that arrives in them is dropped before
// the value reaches the HTML document.
func fieldSanitizer() *bluemonday.Policy {
	fieldPolicyOnce.Do(func() {
		fieldPolicy = bluemonday.StrictPolicy()
	})
	return fieldPolicy
}

func sanitizeFieldText(policy *bluemonday.Policy, raw string) string {
	return strings.TrimSpace(policy.Sanitize(raw))
}
