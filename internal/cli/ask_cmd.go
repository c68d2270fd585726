package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anirudhsk/jarvis/internal/cli/formatter"
)

func newAskCmd(app *App) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   `ask "<natural language>"`,
		Short: "Interpret one command and execute it",
		Long:  "Interpret a natural language command, execute it, and print the reply.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			action := app.Resolver.Resolve(cmd.Context(), args[0], now)
			reply := app.Dispatcher.Execute(cmd.Context(), action, now)

			if jsonOut {
				out, err := json.MarshalIndent(map[string]any{
					"action": action.Name,
					"args":   action.Args,
					"reply":  reply,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding response: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReply(reply))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the resolved action and reply as JSON")
	return cmd
}
