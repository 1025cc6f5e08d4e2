package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/diary/pkg/diary"
)

type PrettyPrint struct {
	ShowID   bool
	Location *time.Location
	Out      io.Writer
}

var (
	spacing = strings.Repeat(" ", len("3f1c2b9e  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) loc() *time.Location {
	if pp.Location != nil {
		return pp.Location
	}
	return time.Local
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Day prints the heading of a day log followed by its entries.
func (pp *PrettyPrint) Day(day diary.DailyLog) {
	pp.TitleWithCount(diary.Heading(day.Date), len(day.Entries))
	pp.Entries(day.Entries...)
}

func (pp *PrettyPrint) Entries(entries ...diary.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " nothing logged yet\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tm := color.New(color.Faint)
	tg := color.New(color.FgCyan, color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			id := shortID(e.ID)
			_, _ = y.Fprint(pp.out(), id)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", len(spacing)-len(id)))
		}
		_, _ = tm.Fprintf(pp.out(), "%8s ", e.Time.Display(pp.loc(), "3:04 PM"))
		if e.Mood != "" {
			_, _ = t.Fprintf(pp.out(), "%s ", e.Mood)
		}
		_, _ = t.Fprint(pp.out(), pp.indent(e.Text))
		if len(e.Tags) > 0 {
			_, _ = tg.Fprintf(pp.out(), " #%s", strings.Join(e.Tags, " #"))
		}
		_, _ = t.Fprintln(pp.out())
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// indent keeps continuation lines of multi-line text under the first line.
func (pp *PrettyPrint) indent(text string) string {
	pad := strings.Repeat(" ", len("10:04 PM "))
	if pp.ShowID {
		pad = spacing + pad
	}
	return strings.ReplaceAll(text, "\n", "\n"+pad)
}

// Notes prints a table of notes, newest last.
func (pp *PrettyPrint) Notes(notes ...diary.Note) {
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no notes\n\n")
		return
	}
	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	if pp.ShowID {
		tbl.AddRow("ID", "TITLE", "CREATED", "CONTENT")
	} else {
		tbl.AddRow("TITLE", "CREATED", "CONTENT")
	}
	for _, n := range notes {
		created := n.CreatedAt.Display(pp.loc(), "2006-01-02 15:04")
		preview := firstLine(n.Content)
		if pp.ShowID {
			tbl.AddRow(shortID(n.ID), n.Title, created, preview)
		} else {
			tbl.AddRow(n.Title, created, preview)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Note prints a single note in full.
func (pp *PrettyPrint) Note(n diary.Note) {
	pp.Title(n.Title)
	c := color.New(color.Faint)
	_, _ = c.Fprintf(pp.out(), "%s  %s\n\n", shortID(n.ID), n.CreatedAt.Display(pp.loc(), "2006-01-02 15:04"))
	_, _ = fmt.Fprintln(pp.out(), n.Content)
	pp.NewLine()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

// shortID is the id prefix shown to users. Commands accept any unique prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
