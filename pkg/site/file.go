package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/post-feed/pkg/posts"
)

// Format is the serialization of a post list file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// postRecord is the on-disk shape of a post
type postRecord struct {
	Title      string       `json:"title" yaml:"title"`
	Permalink  string       `json:"permalink" yaml:"permalink"`
	Date       time.Time    `json:"date" yaml:"date"`
	Published  *bool        `json:"published" yaml:"published"`
	Excerpt    string       `json:"excerpt" yaml:"excerpt"`
	Content    string       `json:"content" yaml:"content"`
	Categories []posts.Term `json:"categories" yaml:"categories"`
	Tags       []posts.Term `json:"tags" yaml:"tags"`
}

// toPost converts a record, treating a missing published flag as published
func (r postRecord) toPost() posts.Post {
	published := true
	if r.Published != nil {
		published = *r.Published
	}

	return posts.Post{
		Title:      r.Title,
		Permalink:  r.Permalink,
		Date:       r.Date,
		Published:  published,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		Categories: r.Categories,
		Tags:       r.Tags,
	}
}

// FileSource reads a list of posts from a JSON or YAML file
type FileSource struct {
	Path   string
	Format Format
}

// Posts implements Source
func (s *FileSource) Posts(ctx context.Context) ([]posts.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts file %s: %w", s.Path, err)
	}

	records, err := decodeRecords(data, s.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode posts file %s: %w", s.Path, err)
	}

	result := make([]posts.Post, 0, len(records))
	for _, record := range records {
		result = append(result, record.toPost())
	}

	slog.Debug("Loaded posts", "path", s.Path, "format", s.Format, "count", len(result))
	return result, nil
}

func decodeRecords(data []byte, format Format) ([]postRecord, error) {
	var records []postRecord

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	case FormatYAML:
		// Keys outside postRecord, such as slug or layout, are ignored as in JSON
		if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&records); err != nil {
			// An empty document decodes to io.EOF
			if len(bytes.TrimSpace(data)) == 0 {
				return nil, nil
			}
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: format %q", ErrUnsupportedSource, format)
	}

	return records, nil
}
