// Package posts selects the blog posts that go into a feed and extracts the
// per-post fields shared by every feed variant.
package posts

import (
	"time"

	"github.com/lepinkainen/post-feed/pkg/content"
)

// DefaultLimit is the number of posts published when no limit is configured
const DefaultLimit = 25

// Term is a named category or tag attached to a post
type Term struct {
	Name string `json:"name" yaml:"name"`
}

// Post is a blog post as provided by the site
type Post struct {
	Title      string
	Permalink  string
	Date       time.Time
	Published  bool
	Excerpt    string // HTML
	Content    string // HTML
	Categories []Term
	Tags       []Term
}

// Summary returns the minified excerpt, or the minified content when the post has no excerpt
func Summary(post Post) string {
	if post.Excerpt != "" {
		return content.Minify(post.Excerpt)
	}
	return content.Minify(post.Content)
}

// Tags returns category names followed by tag names, in stored order.
// Duplicates are kept.
func Tags(post Post) []string {
	names := make([]string, 0, len(post.Categories)+len(post.Tags))
	for _, category := range post.Categories {
		names = append(names, category.Name)
	}
	for _, tag := range post.Tags {
		names = append(names, tag.Name)
	}
	return names
}
