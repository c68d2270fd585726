package interpreter

import (
	"regexp"
	"strings"
	"time"
)

var (
	// Target title: the update verb, then up to two title words, then a
	// field keyword (or "to"/"at") so the title cannot swallow the rest of
	// the sentence. The second title word is lazy so a field keyword is
	// never absorbed into the title.
	reUpdateTarget = regexp.MustCompile(`(?i)(?:update|change|modify|rename|reschedule|move)\s+(?:event\s+)?(?:the\s+)?(\S+(?:\s+\S+)??)\s+(?:event\s+)?(?:name|title|time|date|location|to|at)\b`)

	reUpdateName     = regexp.MustCompile(`(?i)(?:name|title|rename|called)\s+to\s+(\S+)`)
	reUpdateTime     = regexp.MustCompile(`(?i)time\s+to\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm))`)
	reUpdateToClock  = regexp.MustCompile(`(?i)\bto\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm))\b`)
	reUpdateTomorrow = regexp.MustCompile(`(?i)\bto\s+tomorrow\b`)
	reUpdateDate     = regexp.MustCompile(`(?i)(?:date|day)\s+to\s+(\d{1,2}\s+(?:` + monthAlt + `)\s+\d{4})`)
	reUpdateLocation = regexp.MustCompile(`(?i)(?:location|venue|place|room)\s+to\s+(\S+)`)
	reUpdateMove     = regexp.MustCompile(`(?i)move\s+(?:to|at)\s+(\S+)`)
)

// extractUpdate extracts the target event title and each updatable field
// independently. The action is emitted only when both a title and at least
// one update were found; a partial match yields nil rather than a corrupt
// descriptor.
func extractUpdate(msg string, now time.Time) *Action {
	var title string
	if m := reUpdateTarget.FindStringSubmatch(msg); m != nil {
		title = strings.TrimSpace(m[1])
	}

	var updates EventUpdates

	if m := reUpdateName.FindStringSubmatch(msg); m != nil {
		updates.Title = strings.TrimSpace(m[1])
	}
	if m := reUpdateTime.FindStringSubmatch(msg); m != nil {
		if t, ok := NormalizeTime(m[1]); ok {
			updates.Time = t
		}
	}
	// "reschedule X to 5pm" carries no "time" keyword.
	if updates.Time == "" {
		if m := reUpdateToClock.FindStringSubmatch(msg); m != nil {
			if t, ok := NormalizeTime(m[1]); ok {
				updates.Time = t
			}
		}
	}
	if reUpdateTomorrow.MatchString(msg) {
		updates.Date = now.AddDate(0, 0, 1).Format(dateLayout)
	}
	if m := reUpdateDate.FindStringSubmatch(msg); m != nil {
		if d, ok := NormalizeDate(m[1], now); ok {
			updates.Date = d
		}
	}
	if m := reUpdateLocation.FindStringSubmatch(msg); m != nil {
		updates.Location = strings.TrimSpace(m[1])
	} else if m := reUpdateMove.FindStringSubmatch(msg); m != nil {
		updates.Location = strings.TrimSpace(m[1])
	}

	if title == "" || updates.IsZero() {
		return nil
	}
	return &Action{Name: ActionUpdateEvent, Args: UpdateEventArgs{EventTitle: title, Updates: updates}}
}
