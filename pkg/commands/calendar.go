package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	months := 1

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "show which days have entries",
		Example: `
diary calendar
diary calendar --months 3
diary cal --on 2025-1-15
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			on, err := oo.GetOn(s.App.Now())
			if err != nil {
				return output.HandleError(err)
			}

			c := calendar.Calendar{
				App:    s.App,
				On:     on,
				Months: months,
				Out:    cmd.OutOrStdout(),
			}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)
	cmd.Flags().IntVar(&months, "months", 1, "Number of months to show, ending with the month of --on.")

	topLevel.AddCommand(cmd)
}
