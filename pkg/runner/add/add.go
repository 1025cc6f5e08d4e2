package add

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/printers"
)

// Add appends an entry to today's log and prints the day.
type Add struct {
	App      *app.Service
	Text     string
	Options  diary.EntryOptions
	ShowID   bool
	Location *time.Location
	Out      io.Writer

	// Added is set once Do succeeds.
	Added diary.Entry
}

func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add, no diary")
	}

	e, err := n.App.AddEntry(n.Text, n.Options)
	if err != nil {
		return err
	}
	n.Added = e

	day, err := n.App.Day(diary.DateKey(e.Time.Time))
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Location: n.Location, Out: n.Out}
	pp.Day(day)
	return nil
}
