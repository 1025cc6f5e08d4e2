package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Manage notes you want to remember",
		Example: `
diary note add --title "Book list" Dune, Hyperion
diary note list --show-id
diary note show 9a0e
diary note edit 9a0e --title "Reading list"
diary note rm 9a0e
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNoteList(cmd)
	addNoteShow(cmd)
	addNoteAdd(cmd)
	addNoteEdit(cmd)
	addNoteRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addNoteList(parent *cobra.Command) {
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Args:    cobra.NoArgs,
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
			l := note.List{App: s.App, ShowID: do.ShowID, Location: loc, Out: cmd.OutOrStdout()}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addNoteShow(parent *cobra.Command) {
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note in full",
		Args:  requireID("note"),
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
			n := note.Show{App: s.App, ID: args[0], Location: loc, Out: cmd.OutOrStdout()}
			return output.HandleError(n.Do(cmd.Context()))
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addNoteAdd(parent *cobra.Command) {
	var title string
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Add a note",
		Long: base.Wrap80("Add a note. The content is the arguments joined by spaces, or standard " +
			"input when the only argument is \"-\". A blank title becomes \"" + diary.UntitledNote + "\"."),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := joinOrStdin(cmd, args)
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
			n := note.Add{App: s.App, Title: title, Content: content, Location: loc, Out: cmd.OutOrStdout()}
			return output.HandleError(n.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title of the note.")
	options.AddDisplayArgs(cmd, do)
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addNoteEdit(parent *cobra.Command) {
	var title, content string
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title or content of a note",
		Args:  requireID("note"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch diary.NotePatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("content") {
				if content == "-" {
					b, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return output.HandleError(err)
					}
					content = string(b)
				}
				patch.Content = &content
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
			n := note.Edit{App: s.App, ID: args[0], Patch: patch, Location: loc, Out: cmd.OutOrStdout()}
			return output.HandleError(n.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().StringVar(&content, "content", "", `New content, "-" reads standard input.`)
	options.AddDisplayArgs(cmd, do)
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addNoteRemove(parent *cobra.Command) {
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a note",
		Args:    requireID("note"),
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
			n := note.Remove{App: s.App, ID: args[0], ShowID: do.ShowID, Location: loc, Out: cmd.OutOrStdout()}
			return output.HandleError(n.Do(cmd.Context()))
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func requireID(what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("requires exactly one " + what + " id")
		}
		return nil
	}
}

func joinOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return strings.Join(args, " "), nil
}
