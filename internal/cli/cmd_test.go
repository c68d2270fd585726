package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anirudhsk/jarvis/internal/dispatch"
	"github.com/anirudhsk/jarvis/internal/interpreter"
	"github.com/anirudhsk/jarvis/internal/repository"
	"github.com/anirudhsk/jarvis/internal/testutil"
)

var cliNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	events := repository.NewSQLiteEventRepo(database)
	faculty := repository.NewSQLiteFacultyRepo(database)
	notifications := repository.NewSQLiteNotificationRepo(database)

	return &App{
		Resolver:      interpreter.NewResolver(nil),
		Dispatcher:    dispatch.NewDispatcher(events, faculty, notifications),
		Events:        events,
		Faculty:       faculty,
		Notifications: notifications,
		Now:           func() time.Time { return cliNow },
		IsInteractive: func() bool { return false },
	}
}

// runCommand executes the root command with args and returns combined output.
func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func runOK(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := runCommand(t, app, args...)
	require.NoError(t, err, "command %v failed: %s", args, out)
	return out
}

func stdinCommand(t *testing.T, app *App, input string, args ...string) string {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}
