package commands

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes day logs, entries and notes as resources
and diary operations as tools. Pending writes are flushed on shutdown.`,
		Example: `
diary mcp
diary mcp --transport stdio
diary mcp --http-port 0 --tz Europe/Paris
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var transport mcp.Transport
			switch t := strings.ToLower(strings.TrimSpace(mo.Transport)); t {
			case "", string(mcp.TransportHTTP):
				transport = mcp.TransportHTTP
			case string(mcp.TransportStdio):
				transport = mcp.TransportStdio
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", mo.Transport)
			}
			addr, err := mo.Addr()
			if err != nil {
				return err
			}
			tls, err := mo.TLS()
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			loc, err := do.Location(s.Config.Location())
			if err != nil {
				return err
			}

			runner := mcp.Runner{
				App:              s.App,
				Location:         loc,
				Name:             "diary",
				Version:          version,
				Transport:        transport,
				HTTPListenAddr:   addr,
				HTTPEndpointPath: mo.Endpoint(),
				OnHTTPListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", mo.URL(a, tls))
				},
			}
			if tls {
				runner.HTTPServerCert = strings.TrimSpace(mo.TLSCert)
				runner.HTTPServerKey = strings.TrimSpace(mo.TLSKey)
			}
			return runner.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)
	cmd.Flags().StringVar(&do.Timezone, "tz", "", "Time zone used for local times in responses. Defaults to the configured timezone.")

	topLevel.AddCommand(cmd)
}
