package content

import "regexp"

// Rule is a single pattern-based rewrite applied by Prune.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply rewrites every match of the rule in s. Input without a match is
// returned unchanged.
func (r Rule) Apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replacement)
}

// spanUnwrap drops syntax-highlight token spans, keeping their inner text
var spanUnwrap = regexp.MustCompile(`<span class=".*?">(.*?)</span>`)

// rules is the ordered rewrite chain used by Prune. Later rules expect the
// markup removed by earlier ones to be gone already.
var rules = []Rule{
	{
		Name:    "gutter",
		Pattern: regexp.MustCompile(`(?s)<td class="gutter"><pre>(?:<span class="line">[0-9]+</span><br>\s*)+</pre></td>`),
	},
	{
		Name:        "line",
		Pattern:     regexp.MustCompile(`<span class="line">(.*?)</span><br>`),
		Replacement: "${1}\n",
	},
	{
		Name:        "span",
		Pattern:     spanUnwrap,
		Replacement: "${1}",
	},
	{
		Name:        "highlight",
		Pattern:     regexp.MustCompile(`(?s)<figure class="highlight (.*?)"><table><tr><td class="code"><pre>(.*?)</pre></td></tr></table></figure>`),
		Replacement: `<pre class="language-${1}"><code>${2}</code></pre>`,
	},
	{
		Name:        "nested-span",
		Pattern:     spanUnwrap,
		Replacement: "${1}",
	},
	{
		Name:        "lazy-image",
		Pattern:     regexp.MustCompile(`<img src=\s*"[^"]*"\s+data-lazy-src="([^"]*)"\s+alt="([^"]*)"\s*/?>`),
		Replacement: `<img src="${1}" alt="${2}" title="${2}">`,
	},
	{
		Name:    "fas-class",
		Pattern: regexp.MustCompile(`\sclass="fas\s.*?"`),
	},
	{
		Name:    "note-class",
		Pattern: regexp.MustCompile(`\sclass="note\s.*?"`),
	},
}

// Rules returns a copy of the rewrite chain in the order Prune applies it
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Prune simplifies hexo-rendered HTML for feed readers. Highlighted code
// blocks become plain <pre><code> blocks without gutters or token spans,
// lazy-loaded images get their real source back, and decorative icon and
// note classes are removed. Everything else is kept as-is.
func Prune(s string) string {
	for _, rule := range rules {
		s = rule.Apply(s)
	}
	return s
}
