package commands

import (
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	do := &options.DisplayOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add an entry to today's log",
		Long: base.Wrap80("Add an entry to today's log. The text is the arguments joined by spaces, " +
			"or standard input when the only argument is \"-\"."),
		Example: `
diary add shipped the release --mood excited --tags "#work"
echo "a longer thought" | diary add -
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the entry text")
			}
			var err error
			text, err = joinOrStdin(cmd, args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := eo.Entry()
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
			a := add.Add{
				App:      s.App,
				Text:     text,
				Options:  opts,
				ShowID:   do.ShowID,
				Location: loc,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddDisplayArgs(cmd, do)
	registerMoodCompletion(cmd)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
