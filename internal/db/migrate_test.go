package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"events", "faculty", "notifications"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_events_date",
		"idx_events_title",
		"idx_faculty_name",
		"idx_notifications_sent_at",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_FacultyStatusCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO faculty (id, name, status, last_updated)
		VALUES ('f1', 'Dr. Sharma', 'on_leave', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "invalid faculty status should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO faculty (id, name, status, last_updated)
		VALUES ('f1', 'Dr. Sharma', 'absent', '2026-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_FacultyNameUniqueCaseInsensitive(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO faculty (id, name, status, last_updated)
		VALUES ('f1', 'Dr. Sharma', 'present', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO faculty (id, name, status, last_updated)
		VALUES ('f2', 'dr. sharma', 'present', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "duplicate faculty name should violate unique index regardless of case")
}

func TestMigrate_EventsLocationDefault(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO events (id, title, date, time, created_at)
		VALUES ('e1', 'AI Workshop', '2026-03-02', '15:00', '2026-03-01T00:00:00Z')`)
	require.NoError(t, err)

	var location string
	err = db.QueryRow(`SELECT location FROM events WHERE id = 'e1'`).Scan(&location)
	require.NoError(t, err)
	assert.Equal(t, "TBD", location)
}

func TestMigrate_NotificationsStatusCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO notifications (id, recipient, message, status, sent_at)
		VALUES ('n1', 'students', 'exam schedule', 'queued', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown notification status should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO notifications (id, recipient, message, sent_at)
		VALUES ('n1', 'students', 'exam schedule', '2026-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}
