package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name     string
		filePath string
	}{
		{
			name:     "current directory",
			filePath: "rss.json",
		},
		{
			name:     "single new directory",
			filePath: filepath.Join(tempDir, "public", "rss.json"),
		},
		{
			name:     "nested new directories",
			filePath: filepath.Join(tempDir, "site", "public", "feeds", "feed.json"),
		},
		{
			name:     "directory already exists",
			filePath: filepath.Join(tempDir, "feed.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EnsureDirectoryExists(tt.filePath); err != nil {
				t.Fatalf("EnsureDirectoryExists(%q) error = %v", tt.filePath, err)
			}

			dir := filepath.Dir(tt.filePath)
			info, err := os.Stat(dir)
			if err != nil {
				t.Fatalf("Directory %q was not created: %v", dir, err)
			}
			if !info.IsDir() {
				t.Errorf("%q is not a directory", dir)
			}
		})
	}
}

func TestEnsureDirectoryExists_FileInTheWay(t *testing.T) {
	tempDir := t.TempDir()

	blocker := filepath.Join(tempDir, "public")
	if err := os.WriteFile(blocker, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}

	if err := EnsureDirectoryExists(filepath.Join(blocker, "rss.json")); err == nil {
		t.Error("Expected an error when a file blocks the directory path")
	}
}

func TestGetDefaultPath(t *testing.T) {
	result, err := GetDefaultPath("posts.db")
	if err != nil {
		t.Fatalf("GetDefaultPath() error = %v", err)
	}

	if !filepath.IsAbs(result) {
		t.Errorf("GetDefaultPath() = %q, should be absolute", result)
	}
	if filepath.Base(result) != "posts.db" {
		t.Errorf("GetDefaultPath() = %q, expected posts.db file name", result)
	}
}

func TestResolvePath(t *testing.T) {
	tempDir := t.TempDir()

	existing := filepath.Join(tempDir, "_config.yml")
	if err := os.WriteFile(existing, []byte("title: x\n"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "empty path",
			path:     "",
			expected: "",
		},
		{
			name:     "absolute path kept",
			path:     existing,
			expected: existing,
		},
		{
			name:     "missing relative path returned as given",
			path:     "definitely-missing-config.yml",
			expected: "definitely-missing-config.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ResolvePath(tt.path); result != tt.expected {
				t.Errorf("ResolvePath(%q) = %q, expected %q", tt.path, result, tt.expected)
			}
		})
	}
}
