package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/anirudhsk/jarvis/internal/dispatch"
	"github.com/anirudhsk/jarvis/internal/interpreter"
	"github.com/anirudhsk/jarvis/internal/repository"
)

// App holds the wired collaborators used by CLI commands.
type App struct {
	Resolver      *interpreter.Resolver
	Dispatcher    *dispatch.Dispatcher
	Events        repository.EventRepo
	Faculty       repository.FacultyRepo
	Notifications repository.NotificationRepo

	// Now is the clock used to resolve relative dates. Tests pin it.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "jarvis" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "jarvis",
		Short: "Campus assistant for events, faculty and notifications",
	}

	root.AddCommand(
		newAskCmd(app),
		newChatCmd(app),
		newServeCmd(app),
		newEventCmd(app),
		newFacultyCmd(app),
		newNotifyCmd(app),
	)

	return root
}
