// Package feed assembles selected blog posts into an RSS-shaped or JSON Feed
// document and writes it out.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/lepinkainen/post-feed/pkg/content"
	"github.com/lepinkainen/post-feed/pkg/posts"
)

const (
	// rssTimeFormat is the RFC 1123 HTTP-date form, always in GMT
	rssTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
	// jsonTimeFormat is ISO 8601 in UTC with millisecond precision
	jsonTimeFormat = "2006-01-02T15:04:05.000Z"
)

// Assembler builds feed documents from posts
type Assembler struct {
	// Now supplies the build time used for lastBuildDate and the pubDate of an empty feed
	Now func() time.Time
}

// NewAssembler creates an assembler using the wall clock
func NewAssembler() *Assembler {
	return &Assembler{Now: time.Now}
}

func (a *Assembler) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// Build selects the publishable posts from all and assembles the feed variant named by cfg.Spec
func (a *Assembler) Build(all []posts.Post, cfg Config) (*Result, error) {
	spec := cfg.Spec
	if spec == "" {
		spec = RSS
	}

	selected := posts.Select(all, cfg.Limit)

	switch spec {
	case RSS:
		return &Result{Spec: RSS, Path: OutputPath(RSS, EncodingJSON), RSS: a.RSS(selected, cfg)}, nil
	case JSONFeed:
		return &Result{Spec: JSONFeed, Path: OutputPath(JSONFeed, EncodingJSON), JSON: a.JSONFeed(selected, cfg)}, nil
	default:
		return nil, &ConfigurationError{Option: "spec", Value: string(cfg.Spec)}
	}
}

// RSS maps already selected posts to the RSS channel shape, keeping their order
func (a *Assembler) RSS(selected []posts.Post, cfg Config) *RSSFeed {
	build := formatRSSTime(a.now())

	items := make([]*RSSItem, 0, len(selected))
	for _, post := range selected {
		items = append(items, &RSSItem{
			Title:       post.Title,
			Link:        post.Permalink,
			Description: posts.Summary(post),
			PubDate:     formatRSSTime(post.Date),
			GUID:        post.Permalink,
			Category:    posts.Tags(post),
		})
	}

	pubDate := build
	if len(items) > 0 {
		pubDate = items[0].PubDate
	}

	return &RSSFeed{
		Title:         cfg.Title,
		Description:   cfg.Description,
		Language:      cfg.Language,
		Link:          cfg.SiteURL,
		WebMaster:     cfg.Author,
		PubDate:       pubDate,
		LastBuildDate: build,
		Generator:     GeneratorName,
		Items:         items,
	}
}

// JSONFeed maps already selected posts to a JSON Feed document, keeping their order
func (a *Assembler) JSONFeed(selected []posts.Post, cfg Config) *JSONFeedDocument {
	items := make([]*JSONFeedItem, 0, len(selected))
	for _, post := range selected {
		items = append(items, &JSONFeedItem{
			ID:            post.Permalink,
			URL:           post.Permalink,
			Title:         post.Title,
			ContentHTML:   content.Prune(post.Content),
			ContentText:   content.Minify(post.Content),
			Summary:       posts.Summary(post),
			DatePublished: formatJSONTime(post.Date),
			Tags:          posts.Tags(post),
		})
	}

	return &JSONFeedDocument{
		Version:     JSONFeedVersion,
		Name:        cfg.Title,
		HomePageURL: cfg.SiteURL,
		FeedURL:     fmt.Sprintf("%s/feed.json", cfg.SiteURL),
		Author:      JSONFeedAuthor{Name: cfg.Author},
		Items:       items,
	}
}

func formatRSSTime(t time.Time) string {
	return t.UTC().Format(rssTimeFormat)
}

func formatJSONTime(t time.Time) string {
	return t.UTC().Format(jsonTimeFormat)
}

// TruncateString truncates a string to at most maxLen runes
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return strings.TrimSpace(string(runes[:maxLen-3])) + "..."
}
