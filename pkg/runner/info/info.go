package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/store"
)

// Info prints where the diary lives and how much it holds.
type Info struct {
	Config *store.Config
	App    *app.Service
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DIARY_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "DIARY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:     ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.key:      ", n.Config.Key)
	_, _ = fmt.Fprintln(out, "Config.debounce: ", n.Config.Debounce)
	_, _ = fmt.Fprintln(out, "Config.timezone: ", n.Config.Location())
	_, _ = fmt.Fprintln(out, "Remote.driver:   ", n.Config.Remote.Driver)
	if n.Config.Remote.Driver != store.DriverNone {
		_, _ = fmt.Fprintln(out, "Remote.record:   ", store.Address{
			Collection: n.Config.Remote.Collection,
			Record:     n.Config.Remote.Record,
		})
	}

	if n.App == nil {
		return fmt.Errorf("failed to open the diary")
	}

	doc := n.App.Document()
	_, _ = fmt.Fprintf(out, "Days:\n")
	days := doc.Days()
	for _, k := range days {
		_, _ = fmt.Fprintf(out, "  %s  %d\n", k, len(doc.Logs[k].Entries))
	}
	if len(days) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no days")
	}
	_, _ = fmt.Fprintf(out, "Notes: %d\n", len(doc.Notes))
	return nil
}
