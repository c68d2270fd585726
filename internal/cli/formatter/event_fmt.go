package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/anirudhsk/jarvis/internal/domain"
)

// FormatEvents renders a list of events as an aligned, colored block.
func FormatEvents(events []*domain.Event) string {
	var b strings.Builder
	b.WriteString(Header("Events"))
	b.WriteString("\n")

	if len(events) == 0 {
		b.WriteString(Dim("No events.") + "\n")
		return b.String()
	}

	titleWidth := 0
	for _, e := range events {
		if len(e.Title) > titleWidth {
			titleWidth = len(e.Title)
		}
	}

	for _, e := range events {
		padded := e.Title + strings.Repeat(" ", titleWidth-len(e.Title))
		fmt.Fprintf(&b, "%s  %s %s  %s\n",
			Bold(padded),
			StyleBlue.Render(e.Date),
			StyleYellow.Render(e.Time),
			Dim(e.Location),
		)
	}
	return b.String()
}

// FormatFaculty renders the faculty directory with presence indicators.
func FormatFaculty(members []*domain.FacultyMember) string {
	var b strings.Builder
	b.WriteString(Header("Faculty"))
	b.WriteString("\n")

	if len(members) == 0 {
		b.WriteString(Dim("No faculty records.") + "\n")
		return b.String()
	}

	for _, m := range members {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			StatusIndicator(m.Status),
			Bold(m.Name),
			Dim("updated "+m.LastUpdated.Format("2006-01-02")),
		)
	}
	return b.String()
}

// FormatNotifications renders recent notifications, newest first.
func FormatNotifications(notifications []*domain.Notification) string {
	var b strings.Builder
	b.WriteString(Header("Notifications"))
	b.WriteString("\n")

	if len(notifications) == 0 {
		b.WriteString(Dim("No notifications sent.") + "\n")
		return b.String()
	}

	for _, n := range notifications {
		fmt.Fprintf(&b, "%s %s %s\n  %s\n",
			Dim(n.SentAt.Format(time.RFC3339)),
			StylePurple.Render("→"),
			Bold(n.Recipient),
			StyleFg.Render(n.Message),
		)
	}
	return b.String()
}

// FormatReply renders an assistant reply for terminal display.
func FormatReply(reply string) string {
	return StyleGreen.Render("jarvis") + Dim(" · ") + StyleFg.Render(reply) + "\n"
}
