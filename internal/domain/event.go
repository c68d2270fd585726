package domain

import (
	"fmt"
	"time"
)

// Event is a single entry in the campus calendar.
// Date is stored as YYYY-MM-DD and Time as 24-hour HH:MM, matching the
// canonical forms produced by the interpreter.
type Event struct {
	ID        string
	Title     string
	Date      string
	Time      string
	Location  string
	CreatedAt time.Time
}

// Validate checks that the event carries all fields required for storage.
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("event date %q is not YYYY-MM-DD: %w", e.Date, err)
	}
	if _, err := time.Parse("15:04", e.Time); err != nil {
		return fmt.Errorf("event time %q is not HH:MM: %w", e.Time, err)
	}
	return nil
}

// EventPatch is a sparse update applied to an existing event.
// Empty fields are left untouched.
type EventPatch struct {
	Title    string
	Date     string
	Time     string
	Location string
}

// IsZero reports whether the patch carries no changes.
func (p EventPatch) IsZero() bool {
	return p.Title == "" && p.Date == "" && p.Time == "" && p.Location == ""
}

// Sort field and order values accepted by EventFilter.
const (
	SortByDate  = "date"
	SortByTitle = "title"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// EventFilter is a composable predicate set over the event collection.
// Date bounds are canonical YYYY-MM-DD strings; string ordering matches
// chronological ordering for that layout. Before/After are exclusive,
// From/To inclusive, OnDate an exact match.
type EventFilter struct {
	OnDate           string
	Before           string
	After            string
	From             string
	To               string
	LocationContains string
	TitleContains    string
	SortBy           string
	SortOrder        string
	Limit            int
}
