package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/anirudhsk/jarvis/internal/domain"
)

// SQLiteNotificationRepo implements NotificationRepo using a SQLite database.
type SQLiteNotificationRepo struct {
	db *sql.DB
}

// NewSQLiteNotificationRepo creates a new SQLiteNotificationRepo.
func NewSQLiteNotificationRepo(db *sql.DB) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: db}
}

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, recipient, message, status, sent_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.Recipient,
		n.Message,
		string(n.Status),
		n.SentAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, recipient, message, status, sent_at
		FROM notifications ORDER BY sent_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return notifications, nil
}

func scanNotification(rows *sql.Rows) (*domain.Notification, error) {
	var n domain.Notification
	var status, sentAt string
	if err := rows.Scan(&n.ID, &n.Recipient, &n.Message, &status, &sentAt); err != nil {
		return nil, err
	}
	n.Status = domain.NotificationStatus(status)
	t, err := time.Parse(time.RFC3339, sentAt)
	if err != nil {
		return nil, fmt.Errorf("parsing notification sent_at: %w", err)
	}
	n.SentAt = t
	return &n, nil
}
