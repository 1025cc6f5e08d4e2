package remove

import (
	"bytes"
	"context"
	"errors"
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

func TestRemove(t *testing.T) {
	st := &store.Store{Local: store.NewLocal(t.TempDir(), "diary:data:v1", nil)}
	a := app.New(st, time.Hour)
	a.Clock = func() time.Time { return testNow }
	t.Cleanup(a.Flush)

	e, _ := a.AddEntry("typo", diary.EntryOptions{})
	_, _ = a.AddEntry("keeper", diary.EntryOptions{})

	r := Remove{App: a, ID: e.ID[:8], Location: time.UTC, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	day, _ := a.Day("2025-03-14")
	if len(day.Entries) != 1 || day.Entries[0].Text != "keeper" {
		t.Fatalf("unexpected day %#v", day)
	}

	// The removal is persisted straight away.
	if got := st.LoadLocal(); len(got.Logs["2025-03-14"].Entries) != 1 {
		t.Fatalf("expected cache to hold one entry, got %#v", got.Logs["2025-03-14"])
	}

	if err := r.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second removal, got %v", err)
	}
}

func TestRemoveLeavesPastDays(t *testing.T) {
	st := &store.Store{Local: store.NewLocal(t.TempDir(), "diary:data:v1", nil)}
	doc := diary.New()
	old := diary.AddEntry(doc, testNow.Add(-24*time.Hour), "history", diary.EntryOptions{})
	st.SaveLocal(doc)

	a := app.New(st, time.Hour)
	a.Clock = func() time.Time { return testNow }
	t.Cleanup(a.Flush)

	r := Remove{App: a, ID: old.ID, Location: time.UTC, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a past entry, got %v", err)
	}
	day, _ := a.Day("2025-03-13")
	if len(day.Entries) != 1 {
		t.Fatalf("expected past entry to remain, got %#v", day.Entries)
	}
}
