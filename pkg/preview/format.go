// Package preview provides interactive feed item preview functionality using Bubble Tea TUI.
package preview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lepinkainen/post-feed/pkg/feed"
)

// Entry is a feed item reduced to the fields shown by the preview, whichever variant produced it
type Entry struct {
	Title   string
	Link    string
	Date    string
	Tags    []string
	Summary string
	Text    string
	Raw     any // the assembled item, shown encoded in the raw view
}

// EntriesFromResult extracts preview entries from an assembled feed, keeping item order
func EntriesFromResult(result *feed.Result) []Entry {
	var entries []Entry

	switch {
	case result == nil:
		return nil
	case result.JSON != nil:
		for _, item := range result.JSON.Items {
			entries = append(entries, Entry{
				Title:   item.Title,
				Link:    item.URL,
				Date:    item.DatePublished,
				Tags:    item.Tags,
				Summary: item.Summary,
				Text:    item.ContentText,
				Raw:     item,
			})
		}
	case result.RSS != nil:
		for _, item := range result.RSS.Items {
			entries = append(entries, Entry{
				Title:   item.Title,
				Link:    item.Link,
				Date:    item.PubDate,
				Tags:    item.Category,
				Summary: item.Description,
				Raw:     item,
			})
		}
	}

	return entries
}

// wrapText wraps text to the specified width, breaking at word boundaries when possible
func wrapText(text string, width int) string {
	if width <= 0 {
		width = 70
	}

	var result strings.Builder
	lineLen := 0

	for _, word := range strings.Fields(text) {
		wordLen := len([]rune(word))

		if lineLen > 0 && lineLen+1+wordLen > width {
			result.WriteString("\n")
			lineLen = 0
		}

		if lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}

// FormatCompactListItem formats a single entry in compact list format
// Example: " 1. 2024-06-10T08:30:15.250Z  Post Title"
func FormatCompactListItem(index int, entry Entry) string {
	const maxTitleLength = 70
	return fmt.Sprintf("%2d. %s  %s", index+1, entry.Date, feed.TruncateString(entry.Title, maxTitleLength))
}

// FormatDetailedItem formats a single entry with all metadata
func FormatDetailedItem(entry Entry) string {
	var b strings.Builder

	b.WriteString("═══════════════════════════════════════════════════════════════════════\n")
	b.WriteString(fmt.Sprintf("Title: %s\n", entry.Title))
	b.WriteString(fmt.Sprintf("Link: %s\n", entry.Link))
	b.WriteString(fmt.Sprintf("Published: %s\n", entry.Date))

	if len(entry.Tags) > 0 {
		b.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(entry.Tags, ", ")))
	}

	if entry.Summary != "" {
		b.WriteString(fmt.Sprintf("\nSummary:\n%s\n", wrapText(entry.Summary, 70)))
	}

	if text := entry.Text; text != "" && text != entry.Summary {
		const maxContentLength = 1000
		text = feed.TruncateString(text, maxContentLength)
		b.WriteString(fmt.Sprintf("\nContent:\n%s\n", wrapText(text, 70)))
	}

	b.WriteString("═══════════════════════════════════════════════════════════════════════\n")

	return b.String()
}

// FormatRawEntry formats the assembled item as indented JSON, as it appears in the output file
func FormatRawEntry(entry Entry) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entry.Raw); err != nil {
		return fmt.Sprintf("Error encoding entry: %s", err)
	}
	return buf.String()
}
