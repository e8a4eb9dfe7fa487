package feed

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/feeds"

	"github.com/lepinkainen/post-feed/pkg/filesystem"
)

// rssDocument is the gorilla RSS 2.0 document with one <category> per item term
type rssDocument struct {
	XMLName          xml.Name    `xml:"rss"`
	Version          string      `xml:"version,attr"`
	ContentNamespace string      `xml:"xmlns:content,attr"`
	Channel          *rssChannel `xml:"channel"`
}

// rssChannel replaces the gorilla channel items with multi-category entries
type rssChannel struct {
	*feeds.RssFeed
	Items []*rssEntry `xml:"item"`
}

// rssEntry shadows the single gorilla category with the full term list
type rssEntry struct {
	*feeds.RssItem
	Categories []string `xml:"category"`
}

// FeedXml implements feeds.XmlFeed
func (d *rssDocument) FeedXml() interface{} {
	return d
}

// Encode serializes an assembled feed. JSON output is compact with markup
// left unescaped; XML output is only available for the RSS spec.
func Encode(result *Result, encoding Encoding) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("feed is nil")
	}

	switch encoding {
	case EncodingJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(result.Feed()); err != nil {
			return nil, fmt.Errorf("failed to encode %s feed as JSON: %w", result.Spec, err)
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case EncodingXML:
		if result.Spec != RSS || result.RSS == nil {
			return nil, &ConfigurationError{Option: "encoding", Value: string(encoding)}
		}
		return encodeRSSXML(result.RSS)
	default:
		return nil, &ConfigurationError{Option: "encoding", Value: string(encoding)}
	}
}

// encodeRSSXML renders the RSS shape as an RSS 2.0 XML document
func encodeRSSXML(rss *RSSFeed) ([]byte, error) {
	source, err := toGorillaFeed(rss)
	if err != nil {
		return nil, err
	}

	standard := (&feeds.Rss{Feed: source}).RssFeed()
	standard.Language = rss.Language
	standard.WebMaster = rss.WebMaster
	standard.Generator = rss.Generator

	channel := &rssChannel{RssFeed: standard}
	for i, entry := range standard.Items {
		channel.Items = append(channel.Items, &rssEntry{
			RssItem:    entry,
			Categories: rss.Items[i].Category,
		})
	}

	xmlData, err := feeds.ToXML(&rssDocument{
		Version:          "2.0",
		ContentNamespace: "http://purl.org/rss/1.0/modules/content/",
		Channel:          channel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rss feed: %w", err)
	}

	return []byte(xmlData), nil
}

// toGorillaFeed converts the assembled RSS shape back into a gorilla feed,
// recovering the timestamps from their formatted form
func toGorillaFeed(rss *RSSFeed) (*feeds.Feed, error) {
	created, err := parseRSSTime("pubDate", rss.PubDate)
	if err != nil {
		return nil, err
	}
	updated, err := parseRSSTime("lastBuildDate", rss.LastBuildDate)
	if err != nil {
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       rss.Title,
		Link:        &feeds.Link{Href: rss.Link},
		Description: rss.Description,
		Created:     created,
		Updated:     updated,
	}

	for _, item := range rss.Items {
		published, err := parseRSSTime("item pubDate", item.PubDate)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item.Title, err)
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       item.Title,
			Link:        &feeds.Link{Href: item.Link},
			Description: item.Description,
			Id:          item.GUID,
			IsPermaLink: "true",
			Created:     published,
		})
	}

	return feed, nil
}

// parseRSSTime reads a timestamp written by formatRSSTime. An empty value is the zero time.
func parseRSSTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(rssTimeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return t, nil
}

// SaveToFile encodes the feed and writes it below outDir. It returns the path written.
func SaveToFile(result *Result, encoding Encoding, outDir string) (string, error) {
	data, err := Encode(result, encoding)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(outDir, OutputPath(result.Spec, encoding))
	if err := filesystem.EnsureDirectoryExists(outputPath); err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s feed: %w", result.Spec, err)
	}

	slog.Info("Feed saved successfully", "spec", result.Spec, "encoding", encoding, "items", result.ItemCount(), "path", outputPath)
	return outputPath, nil
}
