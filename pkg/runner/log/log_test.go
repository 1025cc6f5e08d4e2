package log

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

func TestLogToday(t *testing.T) {
	a := newApp(t)
	if _, err := a.AddEntry("Morning run", diary.EntryOptions{Mood: diary.MoodHappy}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	var buf bytes.Buffer
	l := Log{App: a, Location: time.UTC, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "Friday, March 14, 2025") || !strings.Contains(got, "Morning run") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestLogEmptyDay(t *testing.T) {
	var buf bytes.Buffer
	l := Log{App: newApp(t), On: "2025-03-01", Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "nothing logged yet") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestLogInvalidDate(t *testing.T) {
	l := Log{App: newApp(t), On: "March 1st", Out: &bytes.Buffer{}}
	if err := l.Do(context.Background()); !errors.Is(err, app.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
