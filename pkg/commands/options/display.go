package options

import (
	"time"

	"github.com/spf13/cobra"
)

// DisplayOptions control how entries and notes are printed.
type DisplayOptions struct {
	ShowID   bool
	Timezone string
}

func AddDisplayArgs(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry or note.")
	cmd.Flags().StringVar(&o.Timezone, "tz", "",
		`Time zone used to print times, example: --tz="Europe/Paris". Defaults to the configured timezone.`)
}

// Location resolves --tz, falling back to def.
func (o *DisplayOptions) Location(def *time.Location) (*time.Location, error) {
	if o.Timezone == "" {
		return def, nil
	}
	return time.LoadLocation(o.Timezone)
}
