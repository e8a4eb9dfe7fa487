package site

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lepinkainen/post-feed/pkg/database"
	"github.com/lepinkainen/post-feed/pkg/filesystem"
	"github.com/lepinkainen/post-feed/pkg/posts"
)

const (
	termCategory = "category"
	termTag      = "tag"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	permalink TEXT NOT NULL,
	published_at TEXT NOT NULL,
	published INTEGER NOT NULL DEFAULT 1,
	excerpt TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS post_terms (
	post_id INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	kind TEXT NOT NULL CHECK (kind IN ('category', 'tag')),
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	PRIMARY KEY (post_id, kind, position)
);
`

// Store keeps posts and their ordered categories and tags in SQLite
type Store struct {
	db *database.Database
}

// OpenStore opens an existing post store for reading
func OpenStore(path string) (*Store, error) {
	if !database.DatabaseExists(path) {
		return nil, fmt.Errorf("post store %s does not exist", path)
	}
	return NewStore(path)
}

// NewStore opens or creates the post store at path
func NewStore(path string) (*Store, error) {
	if err := filesystem.EnsureDirectoryExists(path); err != nil {
		return nil, err
	}

	db, err := database.NewDatabase(database.Config{Path: path})
	if err != nil {
		return nil, err
	}

	if err := db.ExecuteSchema(schema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close post store", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create post store schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file backing the store
func (s *Store) Path() string {
	return s.db.Path()
}

// SavePosts replaces the stored posts with the given ones, keeping their order
func (s *Store) SavePosts(ctx context.Context, all []posts.Post) error {
	err := s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM post_terms`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
			return err
		}

		for _, post := range all {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO posts (title, permalink, published_at, published, excerpt, content) VALUES (?, ?, ?, ?, ?, ?)`,
				post.Title, post.Permalink, post.Date.UTC().Format(time.RFC3339Nano), post.Published, post.Excerpt, post.Content,
			)
			if err != nil {
				return fmt.Errorf("failed to insert post %q: %w", post.Title, err)
			}

			id, err := res.LastInsertId()
			if err != nil {
				return err
			}

			if err := insertTerms(ctx, tx, id, termCategory, post.Categories); err != nil {
				return err
			}
			if err := insertTerms(ctx, tx, id, termTag, post.Tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save posts: %w", err)
	}

	slog.Info("Saved posts", "path", s.db.Path(), "count", len(all))
	return nil
}

func insertTerms(ctx context.Context, tx *sql.Tx, postID int64, kind string, terms []posts.Term) error {
	for i, term := range terms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_terms (post_id, kind, position, name) VALUES (?, ?, ?, ?)`,
			postID, kind, i, term.Name,
		); err != nil {
			return fmt.Errorf("failed to insert %s %q: %w", kind, term.Name, err)
		}
	}
	return nil
}

// Posts implements Source, returning posts in insertion order
func (s *Store) Posts(ctx context.Context) ([]posts.Post, error) {
	db := s.db.DB()

	rows, err := db.QueryContext(ctx,
		`SELECT id, title, permalink, published_at, published, excerpt, content FROM posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var result []posts.Post
	index := make(map[int64]int)
	for rows.Next() {
		var (
			id        int64
			post      posts.Post
			published string
		)
		if err := rows.Scan(&id, &post.Title, &post.Permalink, &published, &post.Published, &post.Excerpt, &post.Content); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}

		post.Date, err = time.Parse(time.RFC3339Nano, published)
		if err != nil {
			return nil, fmt.Errorf("post %d has invalid date %q: %w", id, published, err)
		}

		index[id] = len(result)
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	if err := s.loadTerms(ctx, result, index); err != nil {
		return nil, err
	}

	slog.Debug("Loaded posts", "path", s.db.Path(), "count", len(result))
	return result, nil
}

func (s *Store) loadTerms(ctx context.Context, result []posts.Post, index map[int64]int) error {
	rows, err := s.db.DB().QueryContext(ctx,
		`SELECT post_id, kind, name FROM post_terms ORDER BY post_id, kind, position`)
	if err != nil {
		return fmt.Errorf("failed to query post terms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID int64
			kind   string
			name   string
		)
		if err := rows.Scan(&postID, &kind, &name); err != nil {
			return fmt.Errorf("failed to scan post term: %w", err)
		}

		i, ok := index[postID]
		if !ok {
			continue
		}

		switch kind {
		case termCategory:
			result[i].Categories = append(result[i].Categories, posts.Term{Name: name})
		case termTag:
			result[i].Tags = append(result[i].Tags, posts.Term{Name: name})
		}
	}

	return rows.Err()
}

// Info reports the SQLite version, file size and table count of the store
func (s *Store) Info() (map[string]any, error) {
	return database.GetDatabaseInfo(s.db)
}
