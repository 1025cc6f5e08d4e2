package remove

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
)

// Remove deletes an entry, by id or unique id prefix, from today's log.
type Remove struct {
	App      *app.Service
	ID       string
	Location *time.Location
	Out      io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not remove, no diary")
	}
	on := n.App.Today()

	e, err := n.App.FindEntry(on, n.ID)
	if err != nil {
		return err
	}
	if err := n.App.DeleteEntry(on, e.ID); err != nil {
		return err
	}

	day, err := n.App.Day(on)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true, Location: n.Location, Out: n.Out}
	pp.Day(day)
	return nil
}
