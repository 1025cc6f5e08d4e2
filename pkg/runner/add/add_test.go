package add

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/store"
)

var testNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func init() {
	color.NoColor = true
}

func newApp(t *testing.T) *app.Service {
	t.Helper()
	st := &store.Store{Local: store.NewLocal(t.TempDir(), "diary:data:v1", nil)}
	a := app.New(st, time.Hour)
	a.Clock = func() time.Time { return testNow }
	t.Cleanup(a.Flush)
	return a
}

func TestAdd(t *testing.T) {
	a := newApp(t)
	var buf bytes.Buffer
	n := Add{
		App:      a,
		Text:     "Finished the book",
		Options:  diary.EntryOptions{Mood: diary.MoodExcited, Tags: []string{"reading"}},
		Location: time.UTC,
		Out:      &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if n.Added.ID == "" || n.Added.Text != "Finished the book" {
		t.Fatalf("unexpected entry %#v", n.Added)
	}

	day, _ := a.Day("2025-03-14")
	if len(day.Entries) != 1 || day.Entries[0].ID != n.Added.ID {
		t.Fatalf("entry not stored: %#v", day)
	}
	if got := buf.String(); !strings.Contains(got, "Finished the book") || !strings.Contains(got, "#reading") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestAddEmptyText(t *testing.T) {
	n := Add{App: newApp(t), Text: " \n ", Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); !errors.Is(err, app.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}
