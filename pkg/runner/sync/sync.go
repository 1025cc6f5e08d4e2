package sync

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/app"
)

// Sync reports what the reconciled document holds. With Push it also
// writes the document back to the remote record and waits for the write.
type Sync struct {
	App    *app.Service
	Driver string
	Remote string
	Push   bool
	Out    io.Writer
}

func (n *Sync) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not sync, no diary")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	// Sync replaces the document with the fetched copy, so flush first.
	n.App.Flush()
	if err := n.App.Sync(ctx); err != nil {
		return err
	}

	doc := n.App.Document()
	entries := 0
	for _, key := range doc.Days() {
		entries += len(doc.Logs[key].Entries)
	}

	b := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = b.Fprintf(out, "remote  ")
	if n.Driver == "" || n.Driver == "none" {
		_, _ = f.Fprintln(out, "none (local cache only)")
	} else {
		_, _ = fmt.Fprintf(out, "%s %s\n", n.Driver, n.Remote)
	}
	_, _ = b.Fprintf(out, "days    ")
	_, _ = fmt.Fprintln(out, len(doc.Logs))
	_, _ = b.Fprintf(out, "entries ")
	_, _ = fmt.Fprintln(out, entries)
	_, _ = b.Fprintf(out, "notes   ")
	_, _ = fmt.Fprintln(out, len(doc.Notes))

	if n.Push {
		n.App.Save()
		_, _ = fmt.Fprintln(out, "pushed")
	}
	return nil
}

