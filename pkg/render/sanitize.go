package render

import (
	"github.com/microcosm-cc/bluemonday"
)

// policy is safe for concurrent use once built.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("span")
	p.AllowDataAttributes()
	return p
}

// Sanitize strips markup that is unsafe to embed, keeping span wrappers
// with their class and data-* attributes.
func Sanitize(markup []byte) []byte {
	return policy.SanitizeBytes(markup)
}
