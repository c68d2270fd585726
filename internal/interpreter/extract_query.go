package interpreter

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	reQueryBeforeYear = regexp.MustCompile(`(?i)before\s+(\d{4})\b`)
	reQueryAfterYear  = regexp.MustCompile(`(?i)after\s+(\d{4})\b`)
	reQueryInMonth    = regexp.MustCompile(`(?i)\bin\s+(` + monthAlt + `)(?:\s+(\d{4}))?\b`)
	reQueryBeforeDate = regexp.MustCompile(`(?i)before\s+(\d{1,2}\s+(?:` + monthAlt + `)(?:\s+\d{4})?)`)
	reQueryAfterDate  = regexp.MustCompile(`(?i)after\s+(\d{1,2}\s+(?:` + monthAlt + `)(?:\s+\d{4})?)`)
	reQueryOnDate     = regexp.MustCompile(`(?i)\bon\s+(\d{1,2}\s+(?:` + monthAlt + `))`)
	reQueryBetween    = regexp.MustCompile(`(?i)between\s+(\d{1,2}\s+(?:` + monthAlt + `)(?:\s+\d{4})?)\s+and\s+(\d{1,2}\s+(?:` + monthAlt + `)(?:\s+\d{4})?)`)

	reQueryLocation = regexp.MustCompile(`(?i)\b(?:in|at)\s+([a-z0-9 ]+?)(?:\s+(?:today|tomorrow|this|next)\b|$)`)
	reQuerySearch   = regexp.MustCompile(`(?i)\b(?:for|named|called)\s+([a-z0-9]+)`)

	// Guards against a timeframe phrase or clock time being captured as a
	// location ("in next 3 months", "at 3 pm").
	reTimeframeWord = regexp.MustCompile(`(?i)^(?:today|tomorrow|this|next|upcoming|past|all)\b`)
	reClockLike     = regexp.MustCompile(`(?i)^\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`)
)

// timeframeOrder maps keyword patterns to timeframes, checked in order.
var timeframeOrder = []struct {
	re *regexp.Regexp
	tf Timeframe
}{
	{regexp.MustCompile(`(?i)\btoday\b`), TimeframeToday},
	{regexp.MustCompile(`(?i)\btomorrow\b`), TimeframeTomorrow},
	{regexp.MustCompile(`(?i)\b(?:this|next)\s+week\b`), TimeframeThisWeek},
	{regexp.MustCompile(`(?i)\b(?:this|next)\s+month\b`), TimeframeThisMonth},
	{regexp.MustCompile(`(?i)\b(?:next\s+(?:3|three)\s+months|3\s+months)\b`), TimeframeNext3Months},
	{regexp.MustCompile(`(?i)\b(?:upcoming|future)\b`), TimeframeUpcoming},
	{regexp.MustCompile(`(?i)\b(?:past|previous|old)\b`), TimeframePast},
	{regexp.MustCompile(`(?i)\b(?:all|everything)\b`), TimeframeUpcoming},
}

// queryStep is one date-shaped check in the ordered query cascade.
type queryStep func(msg, lower string, now time.Time) *Action

// queryOrder is the cascade: explicit date shapes first, count phrasing, then
// keyword timeframes. Query extraction is total; callers fall back to an
// upcoming query when every step declines.
var queryOrder = []queryStep{
	queryBeforeYear,
	queryAfterYear,
	queryInMonth,
	queryBeforeDate,
	queryAfterDate,
	queryOnDate,
	queryBetween,
	queryCount,
	queryKeywords,
}

// extractQuery never returns nil: an utterance with no recognizable signal
// still yields a query for upcoming events.
func extractQuery(msg string, now time.Time) *Action {
	lower := strings.ToLower(msg)
	for _, step := range queryOrder {
		if a := step(msg, lower, now); a != nil {
			return a
		}
	}
	return &Action{Name: ActionQueryEvents, Args: QueryEventsArgs{Timeframe: TimeframeUpcoming}}
}

// queryBeforeYear handles bare-year shorthand: "before 2026" means before
// January 1st of that year.
func queryBeforeYear(msg, _ string, _ time.Time) *Action {
	m := reQueryBeforeYear.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	return &Action{Name: ActionAdvancedQuery, Args: AdvancedQueryArgs{BeforeDate: m[1] + "-01-01"}}
}

// queryAfterYear handles "after 2025" as after December 31st of that year.
func queryAfterYear(msg, _ string, _ time.Time) *Action {
	m := reQueryAfterYear.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	return &Action{Name: ActionAdvancedQuery, Args: AdvancedQueryArgs{AfterDate: m[1] + "-12-31"}}
}

// queryInMonth expands "in february [2026]" to the first and last day of
// that month.
func queryInMonth(msg, _ string, now time.Time) *Action {
	m := reQueryInMonth.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	month, ok := monthsByName[strings.ToLower(m[1])]
	if !ok {
		return nil
	}
	year := now.Year()
	if m[2] != "" {
		fmt.Sscanf(m[2], "%d", &year)
	}
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return &Action{Name: ActionAdvancedQuery, Args: AdvancedQueryArgs{
		BetweenStart: fmt.Sprintf("%04d-%02d-01", year, int(month)),
		BetweenEnd:   fmt.Sprintf("%04d-%02d-%02d", year, int(month), lastDay),
	}}
}

func queryBeforeDate(msg, _ string, now time.Time) *Action {
	m := reQueryBeforeDate.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	date, ok := NormalizeDate(m[1], now)
	if !ok {
		return nil
	}
	return &Action{Name: ActionAdvancedQuery, Args: AdvancedQueryArgs{BeforeDate: date}}
}

func queryAfterDate(msg, _ string, now time.Time) *Action {
	m := reQueryAfterDate.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	date, ok := NormalizeDate(m[1], now)
	if !ok {
		return nil
	}
	return &Action{Name: ActionAdvancedQuery, Args: AdvancedQueryArgs{AfterDate: date}}
}

// queryOnDate recognizes "on 5 jan" only alongside an explicit query verb,
// so it cannot collide with the delete extractor's own "on" pattern.
func queryOnDate(msg, lower string, now time.Time) *Action {
	m := reQueryOnDate.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	if !strings.Contains(lower, "show") && !strings.Contains(lower, "list") && !strings.Contains(lower, "events") {
		return nil
	}
	date, ok := NormalizeDate(m[1], now)
	if !ok {
		return nil
	}
	return &Action{Name: ActionAdvancedQuery, Args: AdvancedQueryArgs{BetweenStart: date, BetweenEnd: date}}
}

func queryBetween(msg, _ string, now time.Time) *Action {
	m := reQueryBetween.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	start, ok := NormalizeDate(m[1], now)
	if !ok {
		return nil
	}
	end, ok := NormalizeDate(m[2], now)
	if !ok {
		return nil
	}
	return &Action{Name: ActionAdvancedQuery, Args: AdvancedQueryArgs{BetweenStart: start, BetweenEnd: end}}
}

// queryCount makes "how many"/"count" phrasing always resolve to a query
// with a timeframe, defaulting to upcoming.
func queryCount(msg, lower string, _ time.Time) *Action {
	if !strings.Contains(lower, "how many") && !strings.Contains(lower, "count") {
		return nil
	}
	tf := TimeframeUpcoming
	for _, c := range timeframeOrder {
		if c.re.MatchString(msg) {
			tf = c.tf
			break
		}
	}
	return &Action{Name: ActionAdvancedQuery, Args: AdvancedQueryArgs{Timeframe: tf}}
}

// queryKeywords detects timeframe keywords plus optional location and search
// modifiers. Declines (returns nil) when nothing matched.
func queryKeywords(msg, _ string, _ time.Time) *Action {
	var args QueryEventsArgs

	for _, c := range timeframeOrder {
		if c.re.MatchString(msg) {
			args.Timeframe = c.tf
			break
		}
	}

	if m := reQueryLocation.FindStringSubmatch(msg); m != nil {
		loc := strings.TrimSpace(m[1])
		if loc != "" && !reTimeframeWord.MatchString(loc) && !reClockLike.MatchString(loc) {
			args.Location = loc
		}
	}
	if m := reQuerySearch.FindStringSubmatch(msg); m != nil {
		args.Search = strings.TrimSpace(m[1])
	}

	if args == (QueryEventsArgs{}) {
		return nil
	}
	return &Action{Name: ActionQueryEvents, Args: args}
}
