package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/diary"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects a day log.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-3-14", --on="3/14" or --on=yesterday. Defaults to today.`)
}

// GetOn returns the date key chosen with --on. Days after today are
// rejected since nothing can have been logged on them yet.
func (o *OnOptions) GetOn(now time.Time) (string, error) {
	today := diary.DateKey(now)
	in := strings.ToLower(strings.TrimSpace(o.OnString))

	switch in {
	case "", "today":
		return today, nil
	case "yesterday":
		return diary.DateKey(now.UTC().AddDate(0, 0, -1)), nil
	}

	t, err := time.ParseInLocation(layoutISO, in, time.UTC)
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, in, time.UTC)
		if err != nil {
			return "", fmt.Errorf("invalid date %q: expected YYYY-M-D or M/D", o.OnString)
		}
		// Let the year be the same, or last year if that is still ahead.
		t = t.AddDate(now.UTC().Year(), 0, 0)
		if diary.DateKey(t) > today {
			t = t.AddDate(-1, 0, 0)
		}
	}

	key := diary.DateKey(t)
	if key > today {
		return "", fmt.Errorf("date %s is after today (%s)", key, today)
	}
	return key, nil
}
