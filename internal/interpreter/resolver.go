package interpreter

import (
	"context"
	"strings"
	"time"
)

// FreeformResult is the output of the external freeform classifier: a raw
// action name plus flat string fields, mapped onto the closed action set by
// the resolver.
type FreeformResult struct {
	Action string            `json:"action"`
	Fields map[string]string `json:"fields"`
}

// FreeformClassifier is the capability interface for the optional LLM
// fallback. Implementations receive the raw utterance and the reference time
// and return a best-effort action guess; any error is treated as Unresolved
// by the resolver and never propagated.
type FreeformClassifier interface {
	ClassifyFreeform(ctx context.Context, text string, now time.Time) (*FreeformResult, error)
}

// Resolver orchestrates classifier, extractors and the optional freeform
// fallback into a total function from utterance to action descriptor.
type Resolver struct {
	fallback FreeformClassifier
}

// NewResolver creates a Resolver. A nil fallback disables the freeform path;
// ambiguous utterances then resolve straight to the help reply.
func NewResolver(fallback FreeformClassifier) *Resolver {
	return &Resolver{fallback: fallback}
}

// Resolve interprets a single utterance against the injected reference time.
// It is total: every input, including empty or adversarial text, yields a
// well-formed Action. A rule match is terminal; otherwise the freeform
// fallback gets a single attempt, and failure of any kind lands on the
// deterministic help reply.
func (r *Resolver) Resolve(ctx context.Context, utterance string, now time.Time) Action {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return *chatAction(invalidRequestReply)
	}

	// Rule matched: an extractor produced an actionable descriptor.
	category := Classify(trimmed)
	if category != CategoryChat {
		if a := extract(category, trimmed, now); a != nil {
			return *a
		}
	}

	// Rule ambiguous: a single freeform attempt, errors swallowed.
	if r.fallback != nil {
		res, err := r.fallback.ClassifyFreeform(ctx, trimmed, now)
		if err == nil && res != nil {
			if a := mapFreeform(res, now); a != nil {
				return *a
			}
		}
	}

	// Unresolved: deterministic help reply.
	return *chatAction(helpReply)
}

// mapFreeform converts a freeform classifier result onto the fixed action
// enumeration. Unmapped action names default to chat; mapped actions with
// missing required fields yield nil so the caller falls back to the help
// reply instead of emitting a malformed descriptor.
func mapFreeform(res *FreeformResult, now time.Time) *Action {
	field := func(key string) string {
		return strings.TrimSpace(res.Fields[key])
	}

	switch res.Action {
	case "create_event":
		title, date, clock := field("title"), field("date"), field("time")
		if d, ok := NormalizeDate(date, now); ok {
			date = d
		}
		if t, ok := NormalizeTime(clock); ok {
			clock = t
		}
		if title == "" || date == "" || clock == "" {
			return nil
		}
		location := field("location")
		if location == "" {
			location = "TBD"
		}
		return &Action{Name: ActionCreateEvent, Args: CreateEventArgs{
			Title: title, Date: date, Time: clock, Location: location,
		}}

	case "delete_event":
		if field("event_title") == "" && field("event_id") == "" {
			return nil
		}
		return &Action{Name: ActionDeleteEvent, Args: DeleteEventArgs{
			EventID: field("event_id"), EventTitle: field("event_title"),
		}}

	case "query_events":
		return &Action{Name: ActionQueryEvents, Args: QueryEventsArgs{
			Timeframe: queryTimeframe(field("timeframe")),
			Location:  field("location"),
			Search:    field("search"),
		}}

	case "mark_teacher_absent":
		name, date := field("teacher_name"), field("date")
		if d, ok := NormalizeDate(date, now); ok {
			date = d
		}
		if name == "" || date == "" {
			return nil
		}
		return &Action{Name: ActionMarkTeacherAbsent, Args: MarkTeacherAbsentArgs{
			TeacherName: name, Date: date,
		}}

	case "send_notification":
		recipient, message := field("recipient"), field("message")
		if recipient == "" || message == "" {
			return nil
		}
		return &Action{Name: ActionSendNotification, Args: SendNotificationArgs{
			Recipient: recipient, Message: message,
		}}

	default:
		reply := field("reply")
		if reply == "" {
			reply = helpReply
		}
		return chatAction(reply)
	}
}

// queryTimeframe maps a raw timeframe string onto the known set, defaulting
// to upcoming.
func queryTimeframe(raw string) Timeframe {
	switch Timeframe(raw) {
	case TimeframeToday, TimeframeTomorrow, TimeframeThisWeek,
		TimeframeThisMonth, TimeframeNext3Months, TimeframeUpcoming,
		TimeframePast:
		return Timeframe(raw)
	default:
		return TimeframeUpcoming
	}
}
