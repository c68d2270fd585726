package cli

import (
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/anirudhsk/jarvis/internal/cli/formatter"
	"github.com/anirudhsk/jarvis/internal/dispatch"
	"github.com/anirudhsk/jarvis/internal/domain"
	"github.com/anirudhsk/jarvis/internal/interpreter"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}
	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventRemoveCmd(app),
		newEventExportCmd(app),
	)
	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var title, date, clock, location string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// In a terminal, missing fields are collected through a form.
			if app.interactive() && (title == "" || date == "" || clock == "") {
				if err := eventAddForm(&title, &date, &clock, &location).Run(); err != nil {
					return err
				}
			}
			if title == "" || date == "" || clock == "" {
				return fmt.Errorf("--title, --date and --time are required")
			}

			e := &domain.Event{
				ID:        uuid.NewString(),
				Title:     title,
				Date:      date,
				Time:      clock,
				Location:  location,
				CreatedAt: app.now().UTC(),
			}
			if e.Location == "" {
				e.Location = "TBD"
			}
			if err := app.Events.Create(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %q on %s at %s in %s.\n", e.Title, e.Date, e.Time, e.Location)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "event title")
	cmd.Flags().StringVar(&date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "", "event time (HH:MM, 24-hour)")
	cmd.Flags().StringVar(&location, "location", "", "event location")
	return cmd
}

func eventAddForm(title, date, clock, location *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Placeholder("AI Workshop").Value(title).
				Validate(validateRequired("title")),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Placeholder("2026-03-02").Value(date).
				Validate(validateDate),
			huh.NewInput().Title("Time (HH:MM)").Placeholder("15:00").Value(clock).
				Validate(validateClock),
			huh.NewInput().Title("Location (blank for TBD)").Placeholder("Lab 204").Value(location),
		),
	).WithShowHelp(false)
}

func newEventListCmd(app *App) *cobra.Command {
	var timeframe, location, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := dispatch.FilterForQuery(interpreter.QueryEventsArgs{
				Timeframe: interpreter.Timeframe(timeframe),
				Location:  location,
				Search:    search,
			}, app.now())

			events, err := app.Events.Query(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEvents(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&timeframe, "timeframe", "upcoming", "today, tomorrow, this_week, this_month, next_3_months, upcoming or past")
	cmd.Flags().StringVar(&location, "location", "", "filter by location substring")
	cmd.Flags().StringVar(&search, "search", "", "filter by title substring")
	return cmd
}

func newEventRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove events by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := app.Events.DeleteByTitle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(deleted) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No events named %q.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d event(s) named %q.\n", len(deleted), args[0])
			return nil
		},
	}
	return cmd
}

func newEventExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export upcoming events as an iCalendar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			events, err := app.Events.Query(cmd.Context(), domain.EventFilter{
				From: now.Format("2006-01-02"),
			})
			if err != nil {
				return err
			}

			serialized, err := buildCalendar(events)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), serialized)
				return nil
			}
			if err := os.WriteFile(out, []byte(serialized), 0644); err != nil {
				return fmt.Errorf("writing calendar file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d event(s) to %s.\n", len(events), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output path (stdout when empty)")
	return cmd
}

// buildCalendar renders events as an iCalendar document. Each event gets a
// one-hour window starting at its stored time.
func buildCalendar(events []*domain.Event) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//jarvis//campus assistant//EN")

	for _, e := range events {
		start, err := time.Parse("2006-01-02 15:04", e.Date+" "+e.Time)
		if err != nil {
			return "", fmt.Errorf("event %q has unparseable schedule: %w", e.Title, err)
		}
		ev := cal.AddEvent(e.ID)
		ev.SetSummary(e.Title)
		ev.SetLocation(e.Location)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Hour))
		ev.SetDtStampTime(e.CreatedAt)
	}
	return cal.Serialize(), nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM (24-hour)")
	}
	return nil
}
