package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an entry from today's log",
		Example: `
diary log --show-id
diary rm 3f1c2b9e
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one entry id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			loc, err := do.Location(s.Config.Location())
			if err != nil {
				return output.HandleError(err)
			}
			r := remove.Remove{
				App:      s.App,
				ID:       args[0],
				Location: loc,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
