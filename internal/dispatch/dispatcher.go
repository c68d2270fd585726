package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anirudhsk/jarvis/internal/domain"
	"github.com/anirudhsk/jarvis/internal/interpreter"
	"github.com/anirudhsk/jarvis/internal/repository"
)

// Dispatcher executes interpreted actions against the stores and renders a
// human-readable reply for each.
type Dispatcher struct {
	events        repository.EventRepo
	faculty       repository.FacultyRepo
	notifications repository.NotificationRepo
}

// NewDispatcher creates a Dispatcher over the given repositories.
func NewDispatcher(events repository.EventRepo, faculty repository.FacultyRepo, notifications repository.NotificationRepo) *Dispatcher {
	return &Dispatcher{
		events:        events,
		faculty:       faculty,
		notifications: notifications,
	}
}

// Execute runs one action descriptor. Relative timeframes are resolved
// against now. The reply is always safe to show to the user; storage errors
// surface as an apologetic message rather than a stack trace.
func (d *Dispatcher) Execute(ctx context.Context, action interpreter.Action, now time.Time) string {
	reply, err := d.execute(ctx, action, now)
	if err != nil {
		return fmt.Sprintf("Something went wrong while handling that: %v", err)
	}
	return reply
}

func (d *Dispatcher) execute(ctx context.Context, action interpreter.Action, now time.Time) (string, error) {
	switch args := action.Args.(type) {
	case interpreter.CreateEventArgs:
		return d.createEvent(ctx, args, now)
	case interpreter.DeleteEventArgs:
		return d.deleteEvent(ctx, args)
	case interpreter.DeleteByDateArgs:
		return d.deleteByDate(ctx, args)
	case interpreter.UpdateEventArgs:
		return d.updateEvent(ctx, args)
	case interpreter.QueryEventsArgs:
		return d.queryEvents(ctx, args, now)
	case interpreter.AdvancedQueryArgs:
		return d.advancedQuery(ctx, args, now)
	case interpreter.MarkTeacherAbsentArgs:
		return d.markTeacherAbsent(ctx, args, now)
	case interpreter.SendNotificationArgs:
		return d.sendNotification(ctx, args, now)
	case interpreter.GeneralChatArgs:
		return args.Reply, nil
	default:
		return "", fmt.Errorf("unknown action %q", action.Name)
	}
}

func (d *Dispatcher) createEvent(ctx context.Context, args interpreter.CreateEventArgs, now time.Time) (string, error) {
	location := args.Location
	if location == "" {
		location = "TBD"
	}
	e := &domain.Event{
		ID:        uuid.NewString(),
		Title:     args.Title,
		Date:      args.Date,
		Time:      args.Time,
		Location:  location,
		CreatedAt: now.UTC(),
	}
	if err := d.events.Create(ctx, e); err != nil {
		return "", err
	}
	return fmt.Sprintf("Event %q created for %s at %s in %s.", e.Title, e.Date, e.Time, e.Location), nil
}

func (d *Dispatcher) deleteEvent(ctx context.Context, args interpreter.DeleteEventArgs) (string, error) {
	if args.EventID != "" {
		e, err := d.events.DeleteByID(ctx, args.EventID)
		if err == repository.ErrNotFound {
			return fmt.Sprintf("No event found with id %s.", args.EventID), nil
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted event %q.", e.Title), nil
	}

	deleted, err := d.events.DeleteByTitle(ctx, args.EventTitle)
	if err != nil {
		return "", err
	}
	return formatDeleted(deleted, fmt.Sprintf("named %q", args.EventTitle)), nil
}

func (d *Dispatcher) deleteByDate(ctx context.Context, args interpreter.DeleteByDateArgs) (string, error) {
	var f domain.EventFilter
	var what string
	switch {
	case args.OnDate != "":
		f.OnDate = args.OnDate
		what = "on " + args.OnDate
	case args.BeforeDate != "":
		f.Before = args.BeforeDate
		what = "before " + args.BeforeDate
	case args.AfterDate != "":
		f.After = args.AfterDate
		what = "after " + args.AfterDate
	default:
		return "", fmt.Errorf("delete_by_date needs a date bound")
	}

	deleted, err := d.events.DeleteByRange(ctx, f)
	if err != nil {
		return "", err
	}
	return formatDeleted(deleted, what), nil
}

func (d *Dispatcher) updateEvent(ctx context.Context, args interpreter.UpdateEventArgs) (string, error) {
	title := args.EventTitle
	if title == "" && args.EventID != "" {
		e, err := d.events.GetByID(ctx, args.EventID)
		if err == repository.ErrNotFound {
			return fmt.Sprintf("No event found with id %s.", args.EventID), nil
		}
		if err != nil {
			return "", err
		}
		title = e.Title
	}

	patch := domain.EventPatch{
		Title:    args.Updates.Title,
		Date:     args.Updates.Date,
		Time:     args.Updates.Time,
		Location: args.Updates.Location,
	}
	n, err := d.events.UpdateByTitle(ctx, title, patch)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return fmt.Sprintf("No events found named %q.", title), nil
	}
	return fmt.Sprintf("Updated %d %s named %q.", n, plural(n, "event", "events"), title), nil
}

func (d *Dispatcher) queryEvents(ctx context.Context, args interpreter.QueryEventsArgs, now time.Time) (string, error) {
	events, err := d.events.Query(ctx, FilterForQuery(args, now))
	if err != nil {
		return "", err
	}
	return formatEventList(events), nil
}

func (d *Dispatcher) advancedQuery(ctx context.Context, args interpreter.AdvancedQueryArgs, now time.Time) (string, error) {
	events, err := d.events.Query(ctx, advancedFilter(args, now))
	if err != nil {
		return "", err
	}
	return formatEventList(events), nil
}

func (d *Dispatcher) markTeacherAbsent(ctx context.Context, args interpreter.MarkTeacherAbsentArgs, now time.Time) (string, error) {
	err := d.faculty.MarkAbsent(ctx, &domain.FacultyMember{
		ID:          uuid.NewString(),
		Name:        args.TeacherName,
		Status:      domain.FacultyAbsent,
		LastUpdated: now.UTC(),
	})
	if err != nil {
		return "", err
	}

	// The coordinator is informed of every absence so substitutions can be
	// arranged.
	err = d.notifications.Create(ctx, &domain.Notification{
		ID:        uuid.NewString(),
		Recipient: "coordinator",
		Message:   fmt.Sprintf("%s is absent on %s", args.TeacherName, args.Date),
		Status:    domain.NotificationSent,
		SentAt:    now.UTC(),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Marked %s absent for %s. The coordinator has been notified.", args.TeacherName, args.Date), nil
}

func (d *Dispatcher) sendNotification(ctx context.Context, args interpreter.SendNotificationArgs, now time.Time) (string, error) {
	err := d.notifications.Create(ctx, &domain.Notification{
		ID:        uuid.NewString(),
		Recipient: args.Recipient,
		Message:   args.Message,
		Status:    domain.NotificationSent,
		SentAt:    now.UTC(),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Notification sent to %s: %q", args.Recipient, args.Message), nil
}
