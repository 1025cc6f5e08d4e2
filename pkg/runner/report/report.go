package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/timeutil"
)

// Report prints the entries of a trailing window grouped by day, with mood
// and tag tallies.
type Report struct {
	App      *app.Service
	Window   timeutil.Window
	Location *time.Location
	Out      io.Writer
}

func (n *Report) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not report, no diary")
	}
	result := n.App.Report(n.Window.Range(n.App.Now()))
	n.render(result)
	return nil
}

func (n *Report) render(result app.ReportResult) {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	loc := n.Location
	if loc == nil {
		loc = time.Local
	}

	since := result.Since.In(loc).Format("2006-01-02 15:04")
	until := result.Until.In(loc).Format("2006-01-02 15:04")
	_, _ = fmt.Fprintf(out, "Report · last %s (%s → %s)\n", n.Window.Label, since, until)

	if result.Total == 0 {
		_, _ = fmt.Fprintln(out, "  No entries found in this window.")
		_, _ = fmt.Fprintln(out)
		return
	}

	h := color.New(color.Bold)
	for _, day := range result.Days {
		_, _ = h.Fprintf(out, "\n%s\n", diary.Heading(day.Date))
		for _, e := range day.Entries {
			mood := " "
			if e.Mood != "" {
				mood = string(e.Mood)
			}
			text := strings.ReplaceAll(e.Text, "\n", " ")
			_, _ = fmt.Fprintf(out, "  %8s %s %s\n", e.Time.Display(loc, "3:04 PM"), mood, text)
		}
	}

	_, _ = h.Fprintf(out, "\nMoods\n")
	recorded := false
	for _, m := range diary.Moods() {
		if c := result.Moods[m]; c > 0 {
			recorded = true
			_, _ = fmt.Fprintf(out, "  %s %-9s %d\n", m, m.Name(), c)
		}
	}
	if !recorded {
		_, _ = fmt.Fprintln(out, "  none recorded")
	}

	if len(result.Tags) > 0 {
		_, _ = h.Fprintf(out, "\nTags\n")
		for _, t := range result.Tags {
			_, _ = fmt.Fprintf(out, "  #%-16s %d\n", t.Tag, t.Count)
		}
	}

	_, _ = fmt.Fprintf(out, "\n%d entries on %d days\n\n", result.Total, len(result.Days))
}
