package edit

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/printers"
)

// Edit patches an entry. Text replaces the entry text when non-empty.
type Edit struct {
	App      *app.Service
	On       string
	ID       string
	Text     string
	Patch    diary.EntryPatch
	Location *time.Location
	Out      io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not edit, no diary")
	}
	on := n.On
	if on == "" {
		on = n.App.Today()
	}

	e, err := n.App.FindEntry(on, n.ID)
	if err != nil {
		return err
	}

	patch := n.Patch
	if strings.TrimSpace(n.Text) != "" {
		text := strings.TrimSpace(n.Text)
		patch.Text = &text
	}
	if patch.Text == nil && patch.Mood == nil && patch.Tags == nil {
		return errors.New("nothing to change: give new text, --mood or --tags")
	}

	if _, err := n.App.UpdateEntry(on, e.ID, patch); err != nil {
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
