package edit

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

func TestEditByPrefix(t *testing.T) {
	a := newApp(t)
	e, _ := a.AddEntry("first draft", diary.EntryOptions{Tags: []string{"keep"}})

	mood := diary.MoodThinking
	var buf bytes.Buffer
	n := Edit{
		App:      a,
		ID:       e.ID[:6],
		Text:     "  second draft ",
		Patch:    diary.EntryPatch{Mood: &mood},
		Location: time.UTC,
		Out:      &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	got, err := a.FindEntry("2025-03-14", e.ID)
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}
	if got.Text != "second draft" || got.Mood != diary.MoodThinking || len(got.Tags) != 1 {
		t.Fatalf("unexpected entry %#v", got)
	}
	if !strings.Contains(buf.String(), "second draft") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestEditNothingToChange(t *testing.T) {
	a := newApp(t)
	e, _ := a.AddEntry("unchanged", diary.EntryOptions{})
	n := Edit{App: a, ID: e.ID, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected an error with an empty patch")
	}
}

func TestEditUnknownEntry(t *testing.T) {
	n := Edit{App: newApp(t), ID: "nope", Text: "x", Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
