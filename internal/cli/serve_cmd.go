package cli

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/anirudhsk/jarvis/internal/digest"
	"github.com/anirudhsk/jarvis/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var (
		addr       string
		logFile    string
		digestSpec string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  "Serve the chat endpoint and read APIs over HTTP, with an optional daily event digest.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out io.Writer = os.Stderr
			if logFile != "" {
				out = &lumberjack.Logger{
					Filename:   logFile,
					MaxSize:    20, // megabytes
					MaxBackups: 5,
					MaxAge:     30, // days
					Compress:   true,
				}
			}
			logger := log.New(out, "jarvis ", log.LstdFlags)

			if digestSpec != "" {
				sched := digest.New(app.Events, app.Notifications, logger, app.Now)
				if err := sched.Start(digestSpec); err != nil {
					return err
				}
				defer sched.Stop()
			}

			srv := server.New(
				app.Resolver, app.Dispatcher,
				app.Events, app.Faculty, app.Notifications,
				logger, app.Now,
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this rotating file instead of stderr")
	cmd.Flags().StringVar(&digestSpec, "digest", "", `cron spec for the daily event digest, e.g. "0 7 * * *"`)
	return cmd
}
