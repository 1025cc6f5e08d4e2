package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/diary/pkg/commands/options"
)

var (
	output  = &options.OutputOptions{}
	verbose bool
	logger  = slog.Default()
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "diary",
		Short: base.Wrap80("A personal diary on the command line: daily logs with mood and tags, plus notes you want to remember."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log debug output to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addNote(topLevel)
	addCalendar(topLevel)
	addReport(topLevel)
	addExport(topLevel)
	addSync(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newLogger writes text logs to stderr. The level comes from
// DIARY_LOG_LEVEL unless --verbose asks for debug.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if v := strings.TrimSpace(os.Getenv("DIARY_LOG_LEVEL")); v != "" {
		_ = level.UnmarshalText([]byte(v))
	}
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(l)
	return l
}
