package interpreter

import (
	"regexp"
	"strings"
	"time"
)

// deleteDateRule pairs a date-qualified trigger pattern with the argument
// field it populates.
type deleteDateRule struct {
	re    *regexp.Regexp
	build func(date string) DeleteByDateArgs
}

// deleteDateOrder is the ordered cascade of date-qualified delete patterns:
// "on" before "before" before "after".
var deleteDateOrder = []deleteDateRule{
	{
		re:    regexp.MustCompile(`(?i)(?:delete|remove|cancel)\s+(?:events?\s+)?on\s+(\d{1,2}\s+(?:` + monthAlt + `))`),
		build: func(d string) DeleteByDateArgs { return DeleteByDateArgs{OnDate: d} },
	},
	{
		re:    regexp.MustCompile(`(?i)(?:delete|remove|cancel)\s+(?:events?\s+)?before\s+(\d{1,2}\s+(?:` + monthAlt + `))`),
		build: func(d string) DeleteByDateArgs { return DeleteByDateArgs{BeforeDate: d} },
	},
	{
		re:    regexp.MustCompile(`(?i)(?:delete|remove|cancel)\s+(?:events?\s+)?after\s+(\d{1,2}\s+(?:` + monthAlt + `))`),
		build: func(d string) DeleteByDateArgs { return DeleteByDateArgs{AfterDate: d} },
	},
}

var (
	reDeleteTitle = regexp.MustCompile(`(?i)(?:delete|remove|cancel)\s+(?:event\s+)?(?:named\s+)?(?:the\s+)?(.+?)(?:\s+event)?$`)
	reBareDate    = regexp.MustCompile(`(?i)^\d{1,2}\s+(?:` + monthAlt + `)`)
)

// extractDelete tries the date-qualified cascade first, then falls back to
// title-based deletion when the utterance carries no date qualifier words.
// A remainder that itself looks like a bare date is rejected so that
// "delete 5 jan" is not misread as a title.
func extractDelete(msg string, now time.Time) *Action {
	for _, rule := range deleteDateOrder {
		m := rule.re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		date, ok := NormalizeDate(m[1], now)
		if !ok {
			continue
		}
		return &Action{Name: ActionDeleteByDate, Args: rule.build(date)}
	}

	lower := strings.ToLower(msg)
	if strings.Contains(lower, " on ") || strings.Contains(lower, " before ") || strings.Contains(lower, " after ") {
		return nil
	}

	m := reDeleteTitle.FindStringSubmatch(strings.TrimSpace(msg))
	if m == nil {
		return nil
	}
	title := strings.TrimSpace(m[1])
	if title == "" || reBareDate.MatchString(title) {
		return nil
	}
	return &Action{Name: ActionDeleteEvent, Args: DeleteEventArgs{EventTitle: title}}
}
