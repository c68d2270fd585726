package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anirudhsk/jarvis/internal/cli/formatter"
	"github.com/anirudhsk/jarvis/internal/interpreter"
)

func newFacultyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faculty",
		Short: "Manage the faculty directory",
	}
	cmd.AddCommand(
		newFacultyListCmd(app),
		newFacultyAbsentCmd(app),
	)
	return cmd
}

func newFacultyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List faculty and presence status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Faculty.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFaculty(members))
			return nil
		},
	}
}

func newFacultyAbsentCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "absent <name>",
		Short: "Mark a faculty member absent",
		Long:  "Mark a faculty member absent for a date and notify the coordinator.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			if date == "" {
				date = now.Format("2006-01-02")
			} else if err := validateDate(date); err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			reply := app.Dispatcher.Execute(cmd.Context(), interpreter.Action{
				Name: interpreter.ActionMarkTeacherAbsent,
				Args: interpreter.MarkTeacherAbsentArgs{TeacherName: args[0], Date: date},
			}, now)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReply(reply))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "absence date (YYYY-MM-DD, default today)")
	return cmd
}
