// Package testutil provides shared helpers for database-backed tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// createTestSchema creates the complete database schema for testing
func createTestSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		color TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		is_done BOOLEAN NOT NULL DEFAULT 0,
		tag_id INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_tag ON tasks(tag_id);
	`

	_, err := db.ExecContext(context.Background(), schema)
	return err
}

// CreateTestTag creates a test tag and returns its ID
func CreateTestTag(t *testing.T, db *sql.DB, title, color string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tags (title, color) VALUES (?, ?)", title, color)
	if err != nil {
		t.Fatalf("Failed to create test tag: %v", err)
	}
	tagID, _ := result.LastInsertId()
	return int(tagID)
}

// CreateTestTask creates a test task and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, tagID int, title string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (title, tag_id) VALUES (?, ?)", title, tagID)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	taskID, _ := result.LastInsertId()
	return int(taskID)
}

// MarkTaskDone flips a task's completion flag directly in the database
func MarkTaskDone(t *testing.T, db *sql.DB, taskID int) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"UPDATE tasks SET is_done = 1 WHERE id = ?", taskID)
	if err != nil {
		t.Fatalf("Failed to mark task done: %v", err)
	}
}
