package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/report"
	"tableflip.dev/diary/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	last := timeutil.DefaultWindow

	cmd := &cobra.Command{
		Use:   "report",
		Short: "summarize recent entries with mood and tag counts",
		Example: `
diary report
diary report --last 3d
diary report --last 2w --tz UTC
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := timeutil.ParseWindow(last)
			if err != nil {
				return output.HandleError(err)
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			loc, err := do.Location(s.Config.Location())
			if err != nil {
				return output.HandleError(err)
			}

			r := report.Report{
				App:      s.App,
				Window:   window,
				Location: loc,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddOutputArg(cmd, output)
	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow,
		`Window to report on, example: --last 1d, --last 2w, --last 1mo or --last 1y.`)

	topLevel.AddCommand(cmd)
}
