package posts

import (
	"reflect"
	"testing"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		post     Post
		expected string
	}{
		{
			name: "excerpt preferred",
			post: Post{
				Excerpt: "<p>Short <em>intro</em></p>",
				Content: "<p>Short intro</p><p>And the rest.</p>",
			},
			expected: "Short intro",
		},
		{
			name: "content used without excerpt",
			post: Post{
				Content: "<p>Only\n\ncontent</p>",
			},
			expected: "Only content",
		},
		{
			name:     "empty post",
			post:     Post{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Summary(tt.post)
			if result != tt.expected {
				t.Errorf("Summary() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name     string
		post     Post
		expected []string
	}{
		{
			name: "categories before tags without dedupe",
			post: Post{
				Categories: []Term{{Name: "A"}, {Name: "B"}},
				Tags:       []Term{{Name: "B"}, {Name: "C"}},
			},
			expected: []string{"A", "B", "B", "C"},
		},
		{
			name: "stored order kept",
			post: Post{
				Tags: []Term{{Name: "zeta"}, {Name: "alpha"}},
			},
			expected: []string{"zeta", "alpha"},
		},
		{
			name:     "no terms",
			post:     Post{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Tags(tt.post)
			if result == nil {
				t.Fatal("Tags() returned nil slice")
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Tags() = %v, expected %v", result, tt.expected)
			}
		})
	}
}
