package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Format string
	Out    string
	Render bool
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", "json",
		"Export format: json or text.")
	cmd.Flags().StringVarP(&o.Out, "out", "o", "",
		`Write to this file or directory. A directory gets the default name, "-" writes to stdout.`)
	cmd.Flags().BoolVar(&o.Render, "render", false,
		"Render the text export as styled Markdown on the terminal.")
}
