package sync

import (
	"bytes"
	"context"
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

func TestSyncSummaryAndPush(t *testing.T) {
	st := &store.Store{Local: store.NewLocal(t.TempDir(), "diary:data:v1", nil)}
	a := app.New(st, time.Hour)
	a.Clock = func() time.Time { return testNow }
	t.Cleanup(a.Flush)

	_, _ = a.AddEntry("one", diary.EntryOptions{})
	_, _ = a.AddEntry("two", diary.EntryOptions{})
	a.AddNote(diary.NoteInput{Title: "n"})

	var buf bytes.Buffer
	n := Sync{App: a, Driver: store.DriverNone, Push: true, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"none (local cache only)", "entries 2", "notes   1", "pushed"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	// Push wrote the pending note through to the cache.
	if notes := st.LoadLocal().Notes; len(notes) != 1 {
		t.Fatalf("expected the note in the cache, got %d", len(notes))
	}
}
