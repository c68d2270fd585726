package cli

import (
	"bufio"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/anirudhsk/jarvis/internal/cli/formatter"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive conversation with the assistant",
		Long:  "Start a conversational loop. In a terminal this runs a full-screen shell; otherwise commands are read line by line from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return runPipedChat(app, cmd)
			}

			model := newChatModel(app)
			p := tea.NewProgram(model)
			_, err := p.Run()
			return err
		},
	}
}

// runPipedChat handles non-terminal stdin, one utterance per line.
func runPipedChat(app *App, cmd *cobra.Command) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		now := app.now()
		action := app.Resolver.Resolve(cmd.Context(), line, now)
		reply := app.Dispatcher.Execute(cmd.Context(), action, now)
		fmt.Fprint(out, formatter.FormatReply(reply))
	}
	return scanner.Err()
}
