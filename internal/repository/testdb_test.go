package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the schema laid
// out by hand. Column defaults like gen_random_uuid() are Postgres
// functions, so tests set IDs explicitly instead of auto-migrating.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	stmts := []string{
		`CREATE TABLE templates (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			title TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE template_fields (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			template_id TEXT NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0,
			required INTEGER NOT NULL DEFAULT 0,
			options TEXT
		)`,
		`CREATE TABLE meetings (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			template_id TEXT NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT,
			status TEXT NOT NULL DEFAULT 'draft',
			meeting_date DATETIME
		)`,
		`CREATE TABLE field_values (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			meeting_id TEXT NOT NULL,
			field_id TEXT NOT NULL,
			text_value TEXT,
			number_value REAL,
			boolean_value INTEGER,
			date_value DATETIME,
			UNIQUE (meeting_id, field_id)
		)`,
		`CREATE TABLE attachments (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			meeting_id TEXT NOT NULL,
			original_name TEXT NOT NULL,
			storage_path TEXT NOT NULL,
			mime_type TEXT NOT NULL,
			size_bytes INTEGER NOT NULL
		)`,
		`CREATE TABLE tracking_lists (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			name TEXT NOT NULL,
			template_id TEXT NOT NULL,
			version INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE tracking_fields (
			list_id TEXT NOT NULL,
			field_id TEXT NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0,
			principal INTEGER NOT NULL DEFAULT 0,
			visible INTEGER NOT NULL DEFAULT 1,
			display_mode TEXT NOT NULL DEFAULT 'content',
			alias TEXT,
			PRIMARY KEY (list_id, field_id)
		)`,
		`CREATE TABLE tracking_entries (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			list_id TEXT NOT NULL,
			meeting_id TEXT,
			content TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME,
			display_order INTEGER NOT NULL DEFAULT 0
		)`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	return db
}
