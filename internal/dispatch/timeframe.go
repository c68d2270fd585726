package dispatch

import (
	"time"

	"github.com/anirudhsk/jarvis/internal/domain"
	"github.com/anirudhsk/jarvis/internal/interpreter"
)

const dateLayout = "2006-01-02"

// timeframeFilter resolves a named relative window into concrete date bounds
// anchored at now. An unknown timeframe resolves like upcoming.
func timeframeFilter(tf interpreter.Timeframe, now time.Time) domain.EventFilter {
	today := now.Format(dateLayout)

	switch tf {
	case interpreter.TimeframeToday:
		return domain.EventFilter{OnDate: today}
	case interpreter.TimeframeTomorrow:
		return domain.EventFilter{OnDate: now.AddDate(0, 0, 1).Format(dateLayout)}
	case interpreter.TimeframeThisWeek:
		return domain.EventFilter{From: today, To: now.AddDate(0, 0, 6).Format(dateLayout)}
	case interpreter.TimeframeThisMonth:
		endOfMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
		return domain.EventFilter{From: today, To: endOfMonth.Format(dateLayout)}
	case interpreter.TimeframeNext3Months:
		return domain.EventFilter{From: today, To: now.AddDate(0, 3, 0).Format(dateLayout)}
	case interpreter.TimeframePast:
		return domain.EventFilter{Before: today}
	default: // upcoming
		return domain.EventFilter{From: today}
	}
}

// FilterForQuery resolves a simple query's timeframe and text filters into an
// event filter. Shared with the CLI list command.
func FilterForQuery(args interpreter.QueryEventsArgs, now time.Time) domain.EventFilter {
	f := timeframeFilter(args.Timeframe, now)
	f.LocationContains = args.Location
	f.TitleContains = args.Search
	return f
}

// advancedFilter builds the event filter for an advanced query. Explicit date
// bounds take precedence over the timeframe.
func advancedFilter(args interpreter.AdvancedQueryArgs, now time.Time) domain.EventFilter {
	var f domain.EventFilter

	switch {
	case args.BetweenStart != "" && args.BetweenEnd != "":
		f = domain.EventFilter{From: args.BetweenStart, To: args.BetweenEnd}
	case args.BeforeDate != "":
		f = domain.EventFilter{Before: args.BeforeDate}
	case args.AfterDate != "":
		f = domain.EventFilter{After: args.AfterDate}
	default:
		f = timeframeFilter(args.Timeframe, now)
	}

	f.LocationContains = args.Location
	f.TitleContains = args.Search
	f.SortBy = args.SortBy
	f.SortOrder = args.SortOrder
	f.Limit = args.Limit
	return f
}
