package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/anirudhsk/jarvis/internal/domain"
)

// SQLiteFacultyRepo implements FacultyRepo using a SQLite database.
type SQLiteFacultyRepo struct {
	db *sql.DB
}

// NewSQLiteFacultyRepo creates a new SQLiteFacultyRepo.
func NewSQLiteFacultyRepo(db *sql.DB) *SQLiteFacultyRepo {
	return &SQLiteFacultyRepo{db: db}
}

func (r *SQLiteFacultyRepo) GetByName(ctx context.Context, name string) (*domain.FacultyMember, error) {
	query := `SELECT id, name, status, last_updated FROM faculty WHERE name = ? COLLATE NOCASE`
	row := r.db.QueryRowContext(ctx, query, name)

	m, err := scanFaculty(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning faculty member: %w", err)
	}
	return m, nil
}

func (r *SQLiteFacultyRepo) List(ctx context.Context) ([]*domain.FacultyMember, error) {
	query := `SELECT id, name, status, last_updated FROM faculty ORDER BY name COLLATE NOCASE`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing faculty: %w", err)
	}
	defer rows.Close()

	var members []*domain.FacultyMember
	for rows.Next() {
		m, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning faculty member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating faculty: %w", err)
	}
	return members, nil
}

func (r *SQLiteFacultyRepo) MarkAbsent(ctx context.Context, m *domain.FacultyMember) error {
	// First mention of a name creates the record; the name unique index is
	// case-insensitive, so the conflict clause catches re-marks.
	query := `INSERT INTO faculty (id, name, status, last_updated)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name COLLATE NOCASE) DO UPDATE
		SET status = excluded.status, last_updated = excluded.last_updated`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		string(domain.FacultyAbsent),
		m.LastUpdated.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("marking faculty absent: %w", err)
	}
	return nil
}

func scanFaculty(s rowScanner) (*domain.FacultyMember, error) {
	var m domain.FacultyMember
	var status, lastUpdated string
	if err := s.Scan(&m.ID, &m.Name, &status, &lastUpdated); err != nil {
		return nil, err
	}
	m.Status = domain.FacultyStatus(status)
	t, err := time.Parse(time.RFC3339, lastUpdated)
	if err != nil {
		return nil, fmt.Errorf("parsing faculty last_updated: %w", err)
	}
	m.LastUpdated = t
	return &m, nil
}
