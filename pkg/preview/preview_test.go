package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/post-feed/pkg/feed"
)

func sampleResult() *feed.Result {
	return &feed.Result{
		Spec: feed.JSONFeed,
		JSON: &feed.JSONFeedDocument{
			Items: []*feed.JSONFeedItem{
				{
					ID:            "https://blog.example.com/b/",
					URL:           "https://blog.example.com/b/",
					Title:         "Second",
					ContentHTML:   "<p>Body of the second post.</p>",
					ContentText:   "Body of the second post.",
					Summary:       "Body of the second post.",
					DatePublished: "2024-06-10T08:30:15.250Z",
					Tags:          []string{"go"},
				},
				{
					ID:            "https://blog.example.com/a/",
					URL:           "https://blog.example.com/a/",
					Title:         "First",
					ContentText:   "Intro. The rest.",
					Summary:       "Intro.",
					DatePublished: "2024-05-01T10:00:00.000Z",
					Tags:          []string{},
				},
			},
		},
	}
}

func TestEntriesFromResult(t *testing.T) {
	entries := EntriesFromResult(sampleResult())
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "Second" || entries[1].Title != "First" {
		t.Errorf("Entry order not preserved: %q, %q", entries[0].Title, entries[1].Title)
	}

	rss := &feed.Result{Spec: feed.RSS, RSS: &feed.RSSFeed{Items: []*feed.RSSItem{
		{Title: "Only", Link: "https://x/", PubDate: "Mon, 10 Jun 2024 08:30:15 GMT", Description: "Sum", Category: []string{"A"}},
	}}}
	entries = EntriesFromResult(rss)
	if len(entries) != 1 || entries[0].Summary != "Sum" || entries[0].Date != "Mon, 10 Jun 2024 08:30:15 GMT" {
		t.Errorf("Unexpected RSS entries: %+v", entries)
	}

	if EntriesFromResult(nil) != nil {
		t.Error("Expected nil entries for nil result")
	}
}

func TestFormatCompactListItem(t *testing.T) {
	entry := Entry{Title: "Second", Date: "2024-06-10T08:30:15.250Z"}
	expected := " 1. 2024-06-10T08:30:15.250Z  Second"
	if result := FormatCompactListItem(0, entry); result != expected {
		t.Errorf("FormatCompactListItem() = %q, expected %q", result, expected)
	}
}

func TestFormatDetailedItem(t *testing.T) {
	entries := EntriesFromResult(sampleResult())

	detail := FormatDetailedItem(entries[1])
	for _, want := range []string{"Title: First", "Link: https://blog.example.com/a/", "Summary:\nIntro.", "Content:\nIntro. The rest."} {
		if !strings.Contains(detail, want) {
			t.Errorf("Detail view missing %q:\n%s", want, detail)
		}
	}
	if strings.Contains(detail, "Tags:") {
		t.Error("Detail view should omit empty tags")
	}

	// content identical to the summary is not repeated
	if detail := FormatDetailedItem(entries[0]); strings.Contains(detail, "Content:") {
		t.Errorf("Detail view repeats summary as content:\n%s", detail)
	}
}

func TestFormatRawEntry(t *testing.T) {
	raw := FormatRawEntry(EntriesFromResult(sampleResult())[0])
	if !strings.Contains(raw, `"content_html": "<p>Body of the second post.</p>"`) {
		t.Errorf("Raw view missing unescaped content_html:\n%s", raw)
	}
}

func TestWrapText(t *testing.T) {
	result := wrapText("one two three four five", 9)
	expected := "one two\nthree\nfour five"
	if result != expected {
		t.Errorf("wrapText() = %q, expected %q", result, expected)
	}
}

func TestModel_Navigation(t *testing.T) {
	var m tea.Model = NewModel(EntriesFromResult(sampleResult()), "Example Blog")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	model := m.(Model)
	if model.viewMode != DetailViewMode || model.selectedIndex != 1 {
		t.Fatalf("Expected detail view of entry 1, got mode %d index %d", model.viewMode, model.selectedIndex)
	}
	if !strings.Contains(model.View(), "Title: First") {
		t.Errorf("Detail view does not show the selected entry:\n%s", model.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.(Model).viewMode != RawViewMode {
		t.Error("Expected r to toggle the raw view")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(Model).viewMode != ListViewMode {
		t.Error("Expected esc to return to the list")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("Expected q to quit")
	}
}

func TestModel_VisibleRange(t *testing.T) {
	entries := make([]Entry, 20)
	m := NewModel(entries, "x")
	m.height = 10 // four visible rows
	m.cursor = 19

	start, end := m.visibleRange()
	if start != 16 || end != 20 {
		t.Errorf("visibleRange() = %d, %d, expected 16, 20", start, end)
	}
}
