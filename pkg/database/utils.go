package database

import (
	"fmt"
	"os"
)

// DatabaseExists checks if a database file exists
func DatabaseExists(dbPath string) bool {
	_, err := os.Stat(dbPath)
	return !os.IsNotExist(err)
}

// GetDatabaseInfo returns the SQLite version and table count of the database
func GetDatabaseInfo(db *Database) (map[string]any, error) {
	info := make(map[string]any)

	var version string
	if err := db.DB().QueryRow("SELECT sqlite_version()").Scan(&version); err != nil {
		return nil, fmt.Errorf("failed to get SQLite version: %w", err)
	}
	info["sqlite_version"] = version

	if stat, err := os.Stat(db.Path()); err == nil {
		info["file_size_bytes"] = stat.Size()
	}

	var tableCount int
	if err := db.DB().QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&tableCount); err != nil {
		return nil, fmt.Errorf("failed to get table count: %w", err)
	}
	info["table_count"] = tableCount

	return info, nil
}
