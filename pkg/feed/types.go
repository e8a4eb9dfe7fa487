package feed

import (
	"fmt"
	"strings"
)

const (
	// GeneratorName identifies this tool in the RSS generator field
	GeneratorName = "post-feed"
	// JSONFeedVersion is the JSON Feed version URI
	JSONFeedVersion = "https://jsonfeed.org/version/1"
)

// Spec selects the feed variant to build
type Spec string

const (
	RSS      Spec = "rss"
	JSONFeed Spec = "feed"
)

// Encoding selects how an assembled feed is serialized
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingXML  Encoding = "xml"
)

// ConfigurationError reports an option with a value this package does not support
type ConfigurationError struct {
	Option string
	Value  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid option %s: %q", e.Option, e.Value)
}

// ParseSpec validates a configured spec name. An empty name means RSS.
func ParseSpec(name string) (Spec, error) {
	switch spec := Spec(strings.ToLower(strings.TrimSpace(name))); spec {
	case "":
		return RSS, nil
	case RSS, JSONFeed:
		return spec, nil
	default:
		return "", &ConfigurationError{Option: "spec", Value: name}
	}
}

// ParseEncoding validates a configured encoding name. An empty name means JSON.
func ParseEncoding(name string) (Encoding, error) {
	switch encoding := Encoding(strings.ToLower(strings.TrimSpace(name))); encoding {
	case "":
		return EncodingJSON, nil
	case EncodingJSON, EncodingXML:
		return encoding, nil
	default:
		return "", &ConfigurationError{Option: "encoding", Value: name}
	}
}

// Config carries the site metadata and feed options for one generation call
type Config struct {
	Title       string
	Description string
	Language    string
	SiteURL     string
	Author      string
	Spec        Spec
	Limit       int
}

// RSSItem is a single entry of the RSS-shaped feed
type RSSItem struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	PubDate     string   `json:"pubDate"`
	GUID        string   `json:"guid"`
	Category    []string `json:"category"`
}

// RSSFeed is the RSS 2.0 channel shape
type RSSFeed struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Language      string     `json:"language"`
	Link          string     `json:"link"`
	WebMaster     string     `json:"webMaster"`
	PubDate       string     `json:"pubDate"`
	LastBuildDate string     `json:"lastBuildDate"`
	Generator     string     `json:"generator"`
	Items         []*RSSItem `json:"items"`
}

// JSONFeedAuthor is the JSON Feed author object
type JSONFeedAuthor struct {
	Name string `json:"name"`
}

// JSONFeedItem is a single entry of a JSON Feed
type JSONFeedItem struct {
	ID            string   `json:"id"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	ContentHTML   string   `json:"content_html"`
	ContentText   string   `json:"content_text"`
	Summary       string   `json:"summary"`
	DatePublished string   `json:"date_published"`
	Tags          []string `json:"tags"`
}

// JSONFeedDocument is the top-level JSON Feed v1 object
type JSONFeedDocument struct {
	Version     string          `json:"version"`
	Name        string          `json:"name"`
	HomePageURL string          `json:"home_page_url"`
	FeedURL     string          `json:"feed_url"`
	Author      JSONFeedAuthor  `json:"author"`
	Items       []*JSONFeedItem `json:"items"`
}

// Result is an assembled feed together with the file it belongs in
type Result struct {
	Spec Spec
	Path string
	RSS  *RSSFeed
	JSON *JSONFeedDocument
}

// Feed returns the assembled feed document for serialization
func (r *Result) Feed() any {
	if r.Spec == JSONFeed {
		return r.JSON
	}
	return r.RSS
}

// ItemCount returns the number of items in the assembled feed
func (r *Result) ItemCount() int {
	switch {
	case r.JSON != nil:
		return len(r.JSON.Items)
	case r.RSS != nil:
		return len(r.RSS.Items)
	}
	return 0
}

// OutputPath returns the relative file name for a spec and encoding
func OutputPath(spec Spec, encoding Encoding) string {
	ext := "json"
	if encoding == EncodingXML {
		ext = "xml"
	}
	if spec == JSONFeed {
		return "feed." + ext
	}
	return "rss." + ext
}
