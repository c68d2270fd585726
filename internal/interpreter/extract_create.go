package interpreter

import (
	"regexp"
	"strings"
	"time"
)

var (
	// Title forms: "create [event] [named] TITLE on/at/for/tomorrow/today/<digit>"
	// and "event named/called TITLE on/at".
	reCreateTitle      = regexp.MustCompile(`(?i)(?:create|add|schedule)\s+(?:event\s+)?(?:named\s+)?([a-z0-9 ]+?)\s+(?:on|at|for|tomorrow|today|\d)`)
	reCreateTitleNamed = regexp.MustCompile(`(?i)event\s+(?:named|called)\s+([a-z0-9 ]+?)\s+(?:on|at)`)

	reCreateDate = regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:` + monthAlt + `)\s+\d{4})\b`)
	reCreateTime = regexp.MustCompile(`(?i)\b(\d{1,2}(?::\d{2})?\s*(?:am|pm))\b`)

	// Location anchored to the end of the utterance; the leading letter
	// keeps "at 3 PM" from being read as a venue.
	reCreateLocIn = regexp.MustCompile(`(?i)\bin\s+([a-z][a-z0-9 ]*?)\s*[.!?]?\s*$`)
	reCreateLocAt = regexp.MustCompile(`(?i)\bat\s+([a-z][a-z0-9 ]*?)\s*[.!?]?\s*$`)

	reToday    = regexp.MustCompile(`(?i)\btoday\b`)
	reTomorrow = regexp.MustCompile(`(?i)\btomorrow\b`)
)

// eventNouns are event-type words used by the keyword-proximity title
// fallback.
var eventNouns = map[string]bool{
	"workshop": true, "seminar": true, "event": true, "meeting": true,
	"lecture": true, "class": true, "hackathon": true,
}

// createStopwords are filtered out of proximity-derived titles.
var createStopwords = map[string]bool{
	"create": true, "add": true, "schedule": true, "organize": true,
	"plan": true, "a": true, "an": true, "the": true, "new": true,
	"named": true, "called": true,
}

// extractCreate requires title, date and time; location is the one field
// allowed to default ("TBD") since a venue can be assigned later but
// temporal identity cannot.
func extractCreate(msg string, now time.Time) *Action {
	title := createTitle(msg)

	var date string
	switch {
	case reTomorrow.MatchString(msg):
		date = now.AddDate(0, 0, 1).Format(dateLayout)
	case reToday.MatchString(msg):
		date = now.Format(dateLayout)
	default:
		if m := reCreateDate.FindStringSubmatch(msg); m != nil {
			date, _ = NormalizeDate(m[1], now)
		}
	}

	var clock string
	if m := reCreateTime.FindStringSubmatch(msg); m != nil {
		clock, _ = NormalizeTime(m[1])
	}

	if title == "" || date == "" || clock == "" {
		return nil
	}

	location := "TBD"
	if m := reCreateLocIn.FindStringSubmatch(msg); m != nil {
		location = strings.TrimSpace(m[1])
	} else if m := reCreateLocAt.FindStringSubmatch(msg); m != nil {
		if loc := strings.TrimSpace(m[1]); !reClockLike.MatchString(loc) {
			location = loc
		}
	}

	return &Action{Name: ActionCreateEvent, Args: CreateEventArgs{
		Title:    title,
		Date:     date,
		Time:     clock,
		Location: location,
	}}
}

func createTitle(msg string) string {
	if m := reCreateTitle.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reCreateTitleNamed.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1])
	}
	return proximityTitle(msg)
}

// proximityTitle scans for an event-type noun and takes up to two preceding
// non-stopword words together with the noun as the title.
func proximityTitle(msg string) string {
	words := strings.Fields(msg)
	for i, w := range words {
		clean := strings.ToLower(strings.Trim(w, ".,!?"))
		if !eventNouns[clean] {
			continue
		}
		var parts []string
		for j := i - 1; j >= 0 && len(parts) < 2; j-- {
			prev := strings.Trim(words[j], ".,!?")
			if createStopwords[strings.ToLower(prev)] {
				break
			}
			parts = append([]string{prev}, parts...)
		}
		parts = append(parts, strings.Trim(w, ".,!?"))
		return strings.Join(parts, " ")
	}
	return ""
}
