package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anirudhsk/jarvis/internal/cli/formatter"
	"github.com/anirudhsk/jarvis/internal/interpreter"
)

func newNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send and review notifications",
	}
	cmd.AddCommand(
		newNotifySendCmd(app),
		newNotifyListCmd(app),
	)
	return cmd
}

func newNotifySendCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <recipient> <message>",
		Short: "Send a notification",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := app.Dispatcher.Execute(cmd.Context(), interpreter.Action{
				Name: interpreter.ActionSendNotification,
				Args: interpreter.SendNotificationArgs{Recipient: args[0], Message: args[1]},
			}, app.now())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReply(reply))
			return nil
		},
	}
	return cmd
}

func newNotifyListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sent, err := app.Notifications.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotifications(sent))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum notifications to show")
	return cmd
}
