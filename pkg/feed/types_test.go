package feed

import (
	"errors"
	"testing"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Spec
		expectError bool
	}{
		{name: "rss", input: "rss", expected: RSS},
		{name: "json feed", input: "feed", expected: JSONFeed},
		{name: "mixed case and padding", input: " Feed ", expected: JSONFeed},
		{name: "empty defaults to rss", input: "", expected: RSS},
		{name: "atom rejected", input: "atom", expectError: true},
		{name: "json rejected", input: "json", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSpec(tt.input)
			if tt.expectError {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("ParseSpec(%q) error = %v, expected ConfigurationError", tt.input, err)
				}
				if cfgErr.Option != "spec" || cfgErr.Value != tt.input {
					t.Errorf("Unexpected error fields: %+v", cfgErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpec(%q) error = %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseSpec(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		input       string
		expected    Encoding
		expectError bool
	}{
		{input: "", expected: EncodingJSON},
		{input: "json", expected: EncodingJSON},
		{input: "XML", expected: EncodingXML},
		{input: "yaml", expectError: true},
	}

	for _, tt := range tests {
		result, err := ParseEncoding(tt.input)
		if (err != nil) != tt.expectError {
			t.Errorf("ParseEncoding(%q) error = %v, expectError = %v", tt.input, err, tt.expectError)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseEncoding(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		spec     Spec
		encoding Encoding
		expected string
	}{
		{RSS, EncodingJSON, "rss.json"},
		{JSONFeed, EncodingJSON, "feed.json"},
		{RSS, EncodingXML, "rss.xml"},
	}

	for _, tt := range tests {
		if result := OutputPath(tt.spec, tt.encoding); result != tt.expected {
			t.Errorf("OutputPath(%q, %q) = %q, expected %q", tt.spec, tt.encoding, result, tt.expected)
		}
	}
}

func TestConfigurationError(t *testing.T) {
	err := &ConfigurationError{Option: "spec", Value: "atom"}
	if err.Error() != `invalid option spec: "atom"` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestResult_ItemCount(t *testing.T) {
	tests := []struct {
		name     string
		result   *Result
		expected int
	}{
		{name: "empty result", result: &Result{}, expected: 0},
		{name: "rss", result: &Result{Spec: RSS, RSS: &RSSFeed{Items: []*RSSItem{{}, {}}}}, expected: 2},
		{name: "json feed", result: &Result{Spec: JSONFeed, JSON: &JSONFeedDocument{Items: []*JSONFeedItem{{}}}}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := tt.result.ItemCount(); n != tt.expected {
				t.Errorf("ItemCount() = %d, expected %d", n, tt.expected)
			}
		})
	}
}
