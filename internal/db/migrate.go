package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		date       TEXT NOT NULL,
		time       TEXT NOT NULL,
		location   TEXT NOT NULL DEFAULT 'TBD',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
	`CREATE INDEX IF NOT EXISTS idx_events_title ON events(title COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS faculty (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'present'
		             CHECK(status IN ('present','absent')),
		last_updated TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_faculty_name ON faculty(name COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id        TEXT PRIMARY KEY,
		recipient TEXT NOT NULL,
		message   TEXT NOT NULL,
		status    TEXT NOT NULL DEFAULT 'sent'
		          CHECK(status IN ('sent')),
		sent_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notifications_sent_at ON notifications(sent_at)`,
}
