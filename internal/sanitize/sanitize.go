// Package sanitize strips markup from user-supplied text before it is stored.
// Listings and reports are rendered by a browser, so titles, descriptions and
// tags must not carry HTML.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// maxPasses bounds how many layers of entity escaping are peeled off.
const maxPasses = 4

// Text removes all HTML from s and trims surrounding whitespace.
//
// The policy output is entity-escaped, so "Tom & Jerry" comes back as
// "Tom &amp; Jerry". Decoding it could revive markup that was escaped in the
// input ("&lt;b&gt;"), so the policy is re-applied until decoding no longer
// changes the text. Input that does not settle keeps the escaped form.
func Text(s string) string {
	cur := s
	for range maxPasses {
		next := html.UnescapeString(policy.Sanitize(cur))
		if next == cur {
			return strings.TrimSpace(cur)
		}
		cur = next
	}
	return strings.TrimSpace(policy.Sanitize(cur))
}

// Strings applies Text to every element and drops elements that become empty.
func Strings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if c := Text(s); c != "" {
			out = append(out, c)
		}
	}
	return out
}
