package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/anirudhsk/jarvis/internal/db"
	"github.com/anirudhsk/jarvis/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db *sql.DB
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db *sql.DB) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

const eventColumns = `id, title, date, time, location, created_at`

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	query := `INSERT INTO events (id, title, date, time, location, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Date,
		e.Time,
		e.Location,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanEventRow(row)
}

func (r *SQLiteEventRepo) Query(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	where, args := buildEventWhere(f)

	clause := where + eventOrderClause(f)
	if f.Limit > 0 {
		clause += ` LIMIT ?`
		args = append(args, f.Limit)
	}
	return selectEvents(ctx, r.db, clause, args...)
}

func (r *SQLiteEventRepo) UpdateByTitle(ctx context.Context, title string, patch domain.EventPatch) (int, error) {
	if patch.IsZero() {
		return 0, nil
	}

	var sets []string
	var args []any
	if patch.Title != "" {
		sets = append(sets, "title = ?")
		args = append(args, patch.Title)
	}
	if patch.Date != "" {
		sets = append(sets, "date = ?")
		args = append(args, patch.Date)
	}
	if patch.Time != "" {
		sets = append(sets, "time = ?")
		args = append(args, patch.Time)
	}
	if patch.Location != "" {
		sets = append(sets, "location = ?")
		args = append(args, patch.Location)
	}
	args = append(args, title)

	query := `UPDATE events SET ` + strings.Join(sets, ", ") + ` WHERE title = ? COLLATE NOCASE`
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("updating events by title: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading update count: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteEventRepo) DeleteByTitle(ctx context.Context, title string) ([]*domain.Event, error) {
	return r.deleteWhere(ctx, ` WHERE title = ? COLLATE NOCASE`, []any{title})
}

func (r *SQLiteEventRepo) DeleteByID(ctx context.Context, id string) (*domain.Event, error) {
	deleted, err := r.deleteWhere(ctx, ` WHERE id = ?`, []any{id})
	if err != nil {
		return nil, err
	}
	if len(deleted) == 0 {
		return nil, ErrNotFound
	}
	return deleted[0], nil
}

func (r *SQLiteEventRepo) DeleteByRange(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	where, args := buildEventWhere(f)
	if where == "" {
		return nil, fmt.Errorf("refusing to delete without a date bound")
	}
	return r.deleteWhere(ctx, where, args)
}

// deleteWhere selects the matching rows and deletes them in one transaction
// so the caller can report exactly what was removed.
func (r *SQLiteEventRepo) deleteWhere(ctx context.Context, where string, args []any) ([]*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting delete transaction: %w", err)
	}
	defer tx.Rollback()

	deleted, err := selectEvents(ctx, tx, where+` ORDER BY date, time`, args...)
	if err != nil {
		return nil, err
	}
	if len(deleted) == 0 {
		return nil, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM events`+where, args...); err != nil {
		return nil, fmt.Errorf("deleting events: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing delete: %w", err)
	}
	return deleted, nil
}

func buildEventWhere(f domain.EventFilter) (string, []any) {
	var conds []string
	var args []any

	if f.OnDate != "" {
		conds = append(conds, "date = ?")
		args = append(args, f.OnDate)
	}
	if f.Before != "" {
		conds = append(conds, "date < ?")
		args = append(args, f.Before)
	}
	if f.After != "" {
		conds = append(conds, "date > ?")
		args = append(args, f.After)
	}
	if f.From != "" {
		conds = append(conds, "date >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		conds = append(conds, "date <= ?")
		args = append(args, f.To)
	}
	if f.LocationContains != "" {
		conds = append(conds, "location LIKE ? COLLATE NOCASE")
		args = append(args, "%"+f.LocationContains+"%")
	}
	if f.TitleContains != "" {
		conds = append(conds, "title LIKE ? COLLATE NOCASE")
		args = append(args, "%"+f.TitleContains+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func eventOrderClause(f domain.EventFilter) string {
	col := "date"
	if f.SortBy == domain.SortByTitle {
		col = "title COLLATE NOCASE"
	}
	dir := "ASC"
	if f.SortOrder == domain.SortDesc {
		dir = "DESC"
	}
	if col == "date" {
		return fmt.Sprintf(" ORDER BY date %s, time %s", dir, dir)
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// selectEvents runs an event SELECT over q, which is either the repo's
// handle or an open transaction.
func selectEvents(ctx context.Context, q db.DBTX, clause string, args ...any) ([]*domain.Event, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+eventColumns+` FROM events`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEventRow(row *sql.Row) (*domain.Event, error) {
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return e, err
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	var e domain.Event
	var createdAt string
	if err := s.Scan(&e.ID, &e.Title, &e.Date, &e.Time, &e.Location, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing event created_at: %w", err)
	}
	e.CreatedAt = t
	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}
