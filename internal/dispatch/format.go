package dispatch

import (
	"fmt"
	"strings"

	"github.com/anirudhsk/jarvis/internal/domain"
)

// formatEventList renders a query result as a human-readable reply.
func formatEventList(events []*domain.Event) string {
	if len(events) == 0 {
		return "No events found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s:\n", len(events), plural(len(events), "event", "events"))
	for _, e := range events {
		fmt.Fprintf(&b, "- %s on %s at %s (%s)\n", e.Title, e.Date, e.Time, e.Location)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDeleted(deleted []*domain.Event, what string) string {
	if len(deleted) == 0 {
		return fmt.Sprintf("No events found %s.", what)
	}
	titles := make([]string, len(deleted))
	for i, e := range deleted {
		titles[i] = fmt.Sprintf("%q", e.Title)
	}
	return fmt.Sprintf("Deleted %d %s %s: %s.",
		len(deleted), plural(len(deleted), "event", "events"), what, strings.Join(titles, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
