package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/anirudhsk/jarvis/internal/cli"
	"github.com/anirudhsk/jarvis/internal/db"
	"github.com/anirudhsk/jarvis/internal/dispatch"
	"github.com/anirudhsk/jarvis/internal/intelligence"
	"github.com/anirudhsk/jarvis/internal/interpreter"
	"github.com/anirudhsk/jarvis/internal/llm"
	"github.com/anirudhsk/jarvis/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.jarvis/jarvis.db
	dbPath := os.Getenv("JARVIS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".jarvis", "jarvis.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	events := repository.NewSQLiteEventRepo(database)
	faculty := repository.NewSQLiteFacultyRepo(database)
	notifications := repository.NewSQLiteNotificationRepo(database)

	// The freeform fallback is wired only when the LLM is enabled; the
	// rule-based interpreter covers everything else.
	var fallback interpreter.FreeformClassifier
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		fallback = intelligence.NewFreeformService(llm.NewOllamaClient(llmCfg, observer))
	}

	app := &cli.App{
		Resolver:      interpreter.NewResolver(fallback),
		Dispatcher:    dispatch.NewDispatcher(events, faculty, notifications),
		Events:        events,
		Faculty:       faculty,
		Notifications: notifications,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
