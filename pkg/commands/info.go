package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the diary and where it is stored.",
		Example: `
diary info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			i := info.Info{
				Config: s.Config,
				App:    s.App,
				Out:    cmd.OutOrStdout(),
			}
			return output.HandleError(i.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
