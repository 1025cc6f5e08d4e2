package calendar

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
)

// Calendar prints month calendars with the days that have entries
// highlighted, ending with the month of On.
type Calendar struct {
	App    *app.Service
	On     string // date key inside the last month shown, empty for today
	Months int
	Out    io.Writer
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not show calendar, no diary")
	}
	on := n.On
	if on == "" {
		on = n.App.Today()
	}
	last, err := time.ParseInLocation("2006-01-02", on, time.UTC)
	if err != nil {
		return err
	}
	months := n.Months
	if months < 1 {
		months = 1
	}

	doc := n.App.Document()
	pp := printers.PrettyPrint{Out: n.Out}
	then := time.Date(last.Year(), last.Month()-time.Month(months-1), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		pp.Month(then, n.App.Today(), doc)
		then = printers.NextMonth(then)
	}
	return nil
}
