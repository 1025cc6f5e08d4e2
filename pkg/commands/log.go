package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "view a day log",
		Example: `
diary log
diary log --on yesterday
diary log --on 3/14 --show-id
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
			loc, err := do.Location(s.Config.Location())
			if err != nil {
				return output.HandleError(err)
			}

			l := log.Log{
				App:      s.App,
				On:       on,
				ShowID:   do.ShowID,
				Location: loc,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
