package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/diary"
)

var testNow = time.Date(2025, time.March, 14, 21, 5, 0, 0, time.UTC)

func init() {
	color.NoColor = true
}

func TestDay(t *testing.T) {
	doc := diary.New()
	diary.AddEntry(doc, testNow, "line one\nline two", diary.EntryOptions{Mood: diary.MoodTired, Tags: []string{"late"}})
	day, _ := doc.Day(diary.DateKey(testNow))

	var buf bytes.Buffer
	pp := &PrettyPrint{Location: time.UTC, Out: &buf}
	pp.Day(*day)

	got := buf.String()
	for _, want := range []string{
		"Friday, March 14, 2025 - 1 entry",
		" 9:05 PM 😴 line one\n",
		"line two #late",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestDayEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Day(diary.DailyLog{Date: "2025-03-14"})
	if !strings.Contains(buf.String(), "nothing logged yet") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNotesTable(t *testing.T) {
	doc := diary.New()
	n := diary.AddNote(doc, testNow, diary.NoteInput{Title: "Books", Content: "Dune\nHyperion"})

	var buf bytes.Buffer
	pp := &PrettyPrint{ShowID: true, Location: time.UTC, Out: &buf}
	pp.Notes(doc.Notes...)

	got := buf.String()
	if !strings.Contains(got, shortID(n.ID)) || !strings.Contains(got, "Books") || !strings.Contains(got, "2025-03-14 21:05") {
		t.Fatalf("unexpected table:\n%s", got)
	}
	if strings.Contains(got, "Hyperion") {
		t.Fatalf("expected only the first content line:\n%s", got)
	}
}

func TestEntryCounts(t *testing.T) {
	doc := diary.New()
	diary.AddEntry(doc, testNow, "a", diary.EntryOptions{})
	diary.AddEntry(doc, testNow, "b", diary.EntryOptions{})
	diary.AddEntry(doc, testNow.AddDate(0, 1, 0), "next month", diary.EntryOptions{})

	count := EntryCounts(testNow, doc)
	if len(count) != 31 {
		t.Fatalf("expected 31 days in March, got %d", len(count))
	}
	if count[13] != 2 {
		t.Fatalf("expected two entries on the 14th, got %v", count)
	}
	total := 0
	for _, c := range count {
		total += c
	}
	if total != 2 {
		t.Fatalf("expected other months to be ignored, got %d", total)
	}
}

func TestMonth(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Month(testNow, "2025-03-14", diary.New())

	got := buf.String()
	if !strings.Contains(got, "March 2025") {
		t.Fatalf("missing month title:\n%s", got)
	}
	// March 1st 2025 is a Saturday.
	if !strings.Contains(got, strings.Repeat("   ", 6)+" 1 \n") {
		t.Fatalf("expected the 1st under Saturday:\n%s", got)
	}
}
