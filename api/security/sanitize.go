package security

import "github.com/microcosm-cc/bluemonday"

var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes every HTML element from user text and escapes what is
// left, so it can be rendered as plain text.
func StripTags(s string) string {
	return strictPolicy.Sanitize(s)
}
