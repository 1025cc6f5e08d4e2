package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	diaryexport "tableflip.dev/diary/pkg/export"
	"tableflip.dev/diary/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the whole diary to a JSON or text file",
		Example: `
diary export
diary export -f text -o ~/Documents
diary export -f text -o - --render
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := diaryexport.ParseKind(eo.Format)
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

			e := export.Export{
				App:      s.App,
				Kind:     kind,
				Path:     eo.Out,
				Render:   eo.Render,
				Location: loc,
				Out:      cmd.OutOrStdout(),
			}
			if err := e.Do(cmd.Context()); err != nil {
				return output.HandleError(err)
			}
			if e.Written != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "exported to", e.Written)
			}
			return nil
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddExportArgs(cmd, eo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
