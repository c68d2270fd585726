package interpreter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// monthAlt is the alternation of all recognized month spellings. Long forms
// come first so that "june 2026" is not cut short at "jun", which would drop
// the year from patterns with an optional trailing year group.
const monthAlt = `january|february|feburary|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`

// monthsByName maps each of the 24 recognized spellings to its month number.
// "feburary" is a common misspelling kept for robustness.
var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February, "feburary": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var (
	reCanonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDayFirst      = regexp.MustCompile(`(?i)^(\d{1,2})\s+(` + monthAlt + `)(?:\s+(\d{4}))?$`)
	reMonthFirst    = regexp.MustCompile(`(?i)^(` + monthAlt + `)\s+(\d{1,2})(?:\s+(\d{4}))?$`)
	reClockTime     = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
	reCanonicalTime = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// NormalizeDate converts an informal date phrase into canonical YYYY-MM-DD.
// Supported forms: "today"/"tomorrow" (resolved against the supplied now),
// "5 jan", "jan 5", both with an optional 4-digit year, and canonical
// YYYY-MM-DD pass-through. The reference year is now's year when the phrase
// omits one. Returns ok=false for anything outside the grammar; never panics.
func NormalizeDate(text string, now time.Time) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}

	switch s {
	case "today":
		return now.Format(dateLayout), true
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(dateLayout), true
	}

	if reCanonicalDate.MatchString(s) {
		if _, err := time.Parse(dateLayout, s); err != nil {
			return "", false
		}
		return s, true
	}

	if m := reDayFirst.FindStringSubmatch(s); m != nil {
		return canonicalDate(m[1], m[2], m[3], now.Year())
	}
	if m := reMonthFirst.FindStringSubmatch(s); m != nil {
		return canonicalDate(m[2], m[1], m[3], now.Year())
	}

	return "", false
}

// canonicalDate assembles YYYY-MM-DD from captured day/month/year fragments.
// Day must be in 1..31; the month/day combination is not checked against the
// calendar, matching the permissive behavior of the original grammar.
func canonicalDate(dayStr, monthStr, yearStr string, refYear int) (string, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	month, ok := monthsByName[strings.ToLower(monthStr)]
	if !ok {
		return "", false
	}
	year := refYear
	if yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			return "", false
		}
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), true
}

// NormalizeTime converts a clock phrase into canonical 24-hour HH:MM.
// Accepts "H am", "H:MM pm" (hour 1..12) and well-formed 24-hour "HH:MM"
// pass-through. Noon/midnight rule: "12 am" is 00, "12 pm" stays 12, any
// other pm hour gains 12. Returns ok=false outside the grammar.
func NormalizeTime(text string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}

	if m := reClockTime.FindStringSubmatch(s); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour < 1 || hour > 12 {
			return "", false
		}
		minute := 0
		if m[2] != "" {
			minute, err = strconv.Atoi(m[2])
			if err != nil || minute > 59 {
				return "", false
			}
		}
		switch m[3] {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}

	if m := reCanonicalTime.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return "", false
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}

	return "", false
}
