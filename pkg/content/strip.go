// Package content normalizes template-generated post HTML into plain text
// summaries and pruned HTML suitable for feed readers.
package content

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes all markup from s and decodes entities to their text
// equivalent. Text order and whitespace between tags are preserved.
// Comments and the bodies of script and style elements are dropped.
//
// A decoded < that would open a tag and a decoded & that would start a
// character reference are written back escaped, so the result can never
// contain a tag and StripHTML(StripHTML(s)) == StripHTML(s).
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	z := html.NewTokenizer(strings.NewReader(s))
	skip := ""
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a tokenizer error, either way the text so far is the best we have
			return escapeMarkup(b.String())
		case html.TextToken:
			if skip != "" {
				continue
			}
			b.Write(z.Text())
		case html.StartTagToken:
			name, _ := z.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skip = tag
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == skip {
				skip = ""
			}
		}
	}
}

// escapeMarkup escapes the characters of decoded text that a tokenizer would
// read back as markup. It runs over the joined text because a < at the end of
// one text token can meet a letter at the start of the next.
func escapeMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '<' && opensMarkup(s[i+1:]):
			b.WriteString("&lt;")
		case s[i] == '&' && startsReference(s[i:]):
			b.WriteString("&amp;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// opensMarkup reports whether a < followed by rest starts a tag, end tag,
// comment, declaration or processing instruction
func opensMarkup(rest string) bool {
	if rest == "" {
		return false
	}
	c := rest[0]
	return c == '/' || c == '!' || c == '?' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// startsReference reports whether the & at the start of s would be decoded.
// Only the text up to the next & is considered.
func startsReference(s string) bool {
	ref := s
	if next := strings.IndexByte(s[1:], '&'); next >= 0 {
		ref = s[:next+1]
	}
	return html.UnescapeString(ref) != ref
}
