package watch

import (
	"bytes"
	"context"
	"strings"
	"sync"
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

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchRerendersOnCacheWrite(t *testing.T) {
	dir := t.TempDir()
	const key = "diary:data:v1"

	st := &store.Store{Local: store.NewLocal(dir, key, nil)}
	a := app.New(st, time.Hour)
	a.Clock = func() time.Time { return testNow }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	renders := make(chan struct{}, 8)
	out := &syncBuffer{}
	w := Watch{
		App:      a,
		Location: time.UTC,
		Out:      out,
		OnRender: func() { renders <- struct{}{} },
	}
	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()

	select {
	case <-renders:
	case <-time.After(2 * time.Second):
		t.Fatal("no initial render")
	}

	// Another process writes the cache.
	other := store.NewLocal(dir, key, nil)
	doc := diary.New()
	diary.AddEntry(doc, testNow, "written elsewhere", diary.EntryOptions{})
	other.Save(doc)

	select {
	case <-renders:
	case <-time.After(3 * time.Second):
		t.Fatal("no render after the cache changed")
	}
	if !strings.Contains(out.String(), "written elsewhere") {
		t.Fatalf("expected the new entry in output:\n%s", out.String())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
