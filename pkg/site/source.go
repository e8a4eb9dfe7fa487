// Package site materializes a site's post collection from the places a host
// keeps it: exported JSON or YAML post lists and SQLite post stores.
package site

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lepinkainen/post-feed/pkg/posts"
)

// ErrUnsupportedSource is returned when no source handles a path
var ErrUnsupportedSource = errors.New("unsupported post source")

// Source provides the posts of a site in their stored order
type Source interface {
	Posts(ctx context.Context) ([]posts.Post, error)
}

// Open picks a source for path by its extension. The caller must Close the
// returned source when it implements io.Closer.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return &FileSource{Path: path, Format: FormatJSON}, nil
	case ".yaml", ".yml":
		return &FileSource{Path: path, Format: FormatYAML}, nil
	case ".db", ".sqlite", ".sqlite3":
		return OpenStore(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}
}
