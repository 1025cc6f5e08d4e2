package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/sync"
	"tableflip.dev/diary/pkg/store"
)

func addSync(topLevel *cobra.Command) {
	push := false

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "reconcile the local cache with the remote record",
		Example: `
diary sync
diary sync --push
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			remote := s.Config.Remote
			addr := store.Address{Collection: remote.Collection, Record: remote.Record}

			n := sync.Sync{
				App:    s.App,
				Driver: remote.Driver,
				Remote: addr.String(),
				Push:   push,
				Out:    cmd.OutOrStdout(),
			}
			return output.HandleError(n.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&push, "push", false, "Write the reconciled diary back to the remote record.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
