package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/diary"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar of the UTC month containing then. Days with at
// least one entry are bold and today is underlined.
func (pp *PrettyPrint) Month(then time.Time, today string, doc *diary.Document) {
	pp.PrintMonthCount(then, today, EntryCounts(then, doc))
}

// EntryCounts returns the number of entries logged on each day of the UTC
// month containing then, indexed from zero.
func EntryCounts(then time.Time, doc *diary.Document) []int {
	days := DaysIn(then)
	count := make([]int, days)
	prefix := then.UTC().Format("2006-01-")
	for _, key := range doc.Days() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		t, err := diary.ParseDateKey(key)
		if err != nil || t.Day() > days {
			continue
		}
		count[t.Day()-1] += len(doc.Logs[key].Entries)
	}
	return count
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, today string, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.UTC().Month(), then.UTC().Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = tf.Fprintln(out, "Su Mo Tu We Th Fr Sa")

	// Pad out the start of the month.
	_, _ = fmt.Fprint(out, strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	prefix := then.UTC().Format("2006-01-")

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		p := l1
		if i < len(count) && count[i] > 0 {
			p = l2
		}
		if today == fmt.Sprintf("%s%02d", prefix, i+1) {
			p = color.New(color.Underline, color.Bold)
		}
		_, _ = p.Fprintf(out, "%2d", i+1)
		_, _ = fmt.Fprint(out, " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
