package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "print a day log and keep it current as the diary changes",
		Example: `
diary watch
diary watch --on yesterday --show-id
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

			w := watch.Watch{
				App:      s.App,
				On:       on,
				ShowID:   do.ShowID,
				Location: loc,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(w.Do(cmd.Context()))
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
