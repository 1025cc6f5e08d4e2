package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/diary"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(diary completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(diary completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerMoodCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("mood", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return moodCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
}

func moodCompletions() []string {
	keys := diary.MoodKeys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		m, _ := diary.ParseMood(k)
		out = append(out, k+"\t"+string(m))
	}
	return out
}
