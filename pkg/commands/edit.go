package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	oo := &options.OnOptions{}
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [new text]",
		Short: "Change the text, mood or tags of an entry",
		Example: `
diary edit 3f1c2b9e went better than expected
diary edit 3f1c2b9e --mood happy --on yesterday
diary edit 3f1c2b9e --tags ""
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an entry id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := eo.Patch(cmd)
			if err != nil {
				return output.HandleError(err)
			}
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
			e := edit.Edit{
				App:      s.App,
				On:       on,
				ID:       args[0],
				Text:     strings.Join(args[1:], " "),
				Patch:    patch,
				Location: loc,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(e.Do(cmd.Context()))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddOnArgs(cmd, oo)
	options.AddDisplayArgs(cmd, do)
	registerMoodCompletion(cmd)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
