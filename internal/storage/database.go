package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS klasifikasi (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL,
			active_retention_years INTEGER NOT NULL DEFAULT 0,
			inactive_retention_years INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS arsip (
			id TEXT PRIMARY KEY,
			document_number TEXT NOT NULL DEFAULT '',
			document_date TEXT NOT NULL,
			sender TEXT NOT NULL DEFAULT '',
			recipient TEXT NOT NULL DEFAULT '',
			subject TEXT NOT NULL,
			classification_code TEXT NOT NULL DEFAULT '',
			retention_date TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			file_path TEXT NOT NULL DEFAULT '',
			file_name TEXT NOT NULL DEFAULT '',
			cloud_file_id TEXT NOT NULL DEFAULT '',
			cloud_view_link TEXT NOT NULL DEFAULT '',
			cloud_download_link TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		// Document numbers, when present, are unique across archives.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_arsip_document_number
			ON arsip(document_number) WHERE document_number != '';`,
		`CREATE INDEX IF NOT EXISTS idx_arsip_document_date
			ON arsip(document_date);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
