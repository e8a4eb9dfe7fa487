package content

import "strings"

// Minify strips all markup from s and collapses it into a single line of
// plain text. Leading and trailing whitespace is trimmed and every whitespace
// run, newlines and non-breaking spaces included, becomes one space.
func Minify(s string) string {
	return strings.Join(strings.Fields(StripHTML(s)), " ")
}
