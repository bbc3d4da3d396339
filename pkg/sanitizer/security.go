package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every element and attribute. Script and style bodies
// are dropped together with their tags.
var strictPolicy = bluemonday.StrictPolicy()

// maxStripPasses bounds how many layers of entity encoding StripHTML unwraps.
const maxStripPasses = 8

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// StripHTML removes all markup and returns the remaining text unescaped.
// Entity-encoded markup is decoded and stripped again until the text stops
// changing, so "&lt;script&gt;" cannot come back out as a live tag.
func StripHTML(s string) string {
	for range maxStripPasses {
		out := html.UnescapeString(strictPolicy.Sanitize(s))
		if out == s {
			return out
		}
		s = out
	}
	// Still changing after every pass: drop whatever could open a tag.
	return angleBrackets.Replace(s)
}

// PlainText reduces free-form user input to plain text: markup is stripped
// and control characters other than line breaks and tabs are removed.
// Line structure is preserved so multi-line messages keep their shape.
func PlainText(s string) string {
	return Apply(s, StripHTML, RemoveControlChars)
}
