package repository

import (
	"context"
	"errors"

	"github.com/anirudhsk/jarvis/internal/domain"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Query(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
	// UpdateByTitle applies a sparse patch to all events whose title matches
	// case-insensitively, returning the number of rows changed.
	UpdateByTitle(ctx context.Context, title string, patch domain.EventPatch) (int, error)
	// DeleteByTitle removes events matching the title case-insensitively and
	// returns the removed rows.
	DeleteByTitle(ctx context.Context, title string) ([]*domain.Event, error)
	// DeleteByID removes a single event, returning ErrNotFound if absent.
	DeleteByID(ctx context.Context, id string) (*domain.Event, error)
	// DeleteByRange removes events whose date falls within the filter's
	// bounds and returns the removed rows.
	DeleteByRange(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
}

type FacultyRepo interface {
	GetByName(ctx context.Context, name string) (*domain.FacultyMember, error)
	List(ctx context.Context) ([]*domain.FacultyMember, error)
	// MarkAbsent upserts the named faculty member with absent status,
	// creating the record on first sight.
	MarkAbsent(ctx context.Context, m *domain.FacultyMember) error
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListRecent(ctx context.Context, limit int) ([]*domain.Notification, error)
}
