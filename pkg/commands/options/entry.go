package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/diary"
)

// EntryOptions are the annotations of an entry given on the command line.
type EntryOptions struct {
	Mood string
	Tags string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"Mood of the entry, by name ("+strings.Join(diary.MoodKeys(), ", ")+") or emoji.")
	cmd.Flags().StringVarP(&o.Tags, "tags", "t", "",
		`Tags separated by spaces or commas, example: --tags="#work, urgent".`)
}

// Entry validates the flags.
func (o *EntryOptions) Entry() (diary.EntryOptions, error) {
	mood, err := diary.ParseMood(o.Mood)
	if err != nil {
		return diary.EntryOptions{}, err
	}
	return diary.EntryOptions{Mood: mood, Tags: diary.ParseTags(o.Tags)}, nil
}

// Patch turns the flags that were set on cmd into an entry patch. An empty
// --mood or --tags clears the field.
func (o *EntryOptions) Patch(cmd *cobra.Command) (diary.EntryPatch, error) {
	var patch diary.EntryPatch
	if cmd.Flags().Changed("mood") {
		mood, err := diary.ParseMood(o.Mood)
		if err != nil {
			return patch, err
		}
		patch.Mood = &mood
	}
	if cmd.Flags().Changed("tags") {
		tags := diary.ParseTags(o.Tags)
		patch.Tags = &tags
	}
	return patch, nil
}
