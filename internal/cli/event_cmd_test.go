package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventAddAndList(t *testing.T) {
	app := newTestApp(t)

	out := runOK(t, app, "event", "add",
		"--title", "AI Workshop", "--date", "2026-03-16", "--time", "15:00", "--location", "Lab 204")
	assert.Contains(t, out, `Created "AI Workshop" on 2026-03-16 at 15:00 in Lab 204.`)

	out = runOK(t, app, "event", "list", "--timeframe", "tomorrow")
	assert.Contains(t, out, "AI Workshop")
	assert.Contains(t, out, "2026-03-16")
}

func TestEventAdd_MissingFieldsNonInteractive(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "event", "add", "--title", "AI Workshop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestEventAdd_DefaultLocation(t *testing.T) {
	app := newTestApp(t)

	runOK(t, app, "event", "add", "--title", "Seminar", "--date", "2026-03-16", "--time", "11:00")
	out := runOK(t, app, "event", "list")
	assert.Contains(t, out, "TBD")
}

func TestEventRemove(t *testing.T) {
	app := newTestApp(t)

	runOK(t, app, "event", "add", "--title", "Hackathon", "--date", "2026-04-10", "--time", "09:00")

	out := runOK(t, app, "event", "remove", "Hackathon")
	assert.Contains(t, out, `Removed 1 event(s) named "Hackathon".`)

	out = runOK(t, app, "event", "remove", "Hackathon")
	assert.Contains(t, out, `No events named "Hackathon".`)
}

func TestEventList_FiltersBySearch(t *testing.T) {
	app := newTestApp(t)

	runOK(t, app, "event", "add", "--title", "AI Workshop", "--date", "2026-03-16", "--time", "15:00")
	runOK(t, app, "event", "add", "--title", "Robotics Seminar", "--date", "2026-03-17", "--time", "11:00")

	out := runOK(t, app, "event", "list", "--search", "robotics")
	assert.Contains(t, out, "Robotics Seminar")
	assert.NotContains(t, out, "AI Workshop")
}

func TestEventExport(t *testing.T) {
	app := newTestApp(t)

	runOK(t, app, "event", "add", "--title", "AI Workshop", "--date", "2026-03-16", "--time", "15:00", "--location", "Lab 204")

	path := filepath.Join(t.TempDir(), "events.ics")
	out := runOK(t, app, "event", "export", "--out", path)
	assert.Contains(t, out, "Exported 1 event(s)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "SUMMARY:AI Workshop")
	assert.Contains(t, ics, "LOCATION:Lab 204")
}

func TestEventExport_ExcludesPastEvents(t *testing.T) {
	app := newTestApp(t)

	runOK(t, app, "event", "add", "--title", "Old Meetup", "--date", "2025-11-01", "--time", "10:00")

	out := runOK(t, app, "event", "export")
	assert.NotContains(t, out, "Old Meetup")
	assert.Contains(t, out, "BEGIN:VCALENDAR")
}

func TestFacultyAbsentAndList(t *testing.T) {
	app := newTestApp(t)

	out := runOK(t, app, "faculty", "absent", "Dr. Sharma")
	assert.Contains(t, out, "Marked Dr. Sharma absent for 2026-03-15")

	out = runOK(t, app, "faculty", "list")
	assert.Contains(t, out, "Dr. Sharma")
	assert.Contains(t, out, "ABSENT")
}

func TestFacultyAbsent_RejectsBadDate(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "faculty", "absent", "Dr. Sharma", "--date", "next tuesday")
	require.Error(t, err)
}

func TestNotifySendAndList(t *testing.T) {
	app := newTestApp(t)

	out := runOK(t, app, "notify", "send", "all students", "exam schedule released")
	assert.Contains(t, out, "Notification sent to all students")

	out = runOK(t, app, "notify", "list")
	assert.Contains(t, out, "all students")
	assert.Contains(t, out, "exam schedule released")
}
