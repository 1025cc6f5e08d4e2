package log

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
)

// Log prints the entries of one day.
type Log struct {
	App      *app.Service
	On       string // date key, empty for today
	ShowID   bool
	Location *time.Location
	Out      io.Writer
}

func (n *Log) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not log, no diary")
	}
	on := n.On
	if on == "" {
		on = n.App.Today()
	}

	day, err := n.App.Day(on)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Location: n.Location, Out: n.Out}
	pp.Day(day)
	return nil
}
