package watch

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
)

// Watch prints a day log and prints it again every time another process
// writes the local cache.
type Watch struct {
	App      *app.Service
	On       string
	ShowID   bool
	Location *time.Location
	Out      io.Writer

	// OnRender, when set, is called after every render.
	OnRender func()
}

func (n *Watch) Do(ctx context.Context) error {
	if n.App == nil || n.App.Store == nil || n.App.Store.Local == nil {
		return errors.New("can not watch, no local cache")
	}

	events, err := n.App.Store.Local.Watch(ctx)
	if err != nil {
		return err
	}

	if err := n.render(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			n.App.Reload()
			if err := n.render(); err != nil {
				return err
			}
		}
	}
}

func (n *Watch) render() error {
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
	if n.OnRender != nil {
		n.OnRender()
	}
	return nil
}
