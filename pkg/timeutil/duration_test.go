package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	w, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Duration != 7*24*time.Hour {
		t.Fatalf("expected one week, got %v", w.Duration)
	}
	if w.Label != "1w" {
		t.Fatalf("expected label 1w, got %s", w.Label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	w, err := ParseWindow("1w 2d 6h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24 + 2*24 + 6) * time.Hour
	if w.Duration != want {
		t.Fatalf("expected %v, got %v", want, w.Duration)
	}
	if w.Label != "1w2d6h" {
		t.Fatalf("unexpected label: %s", w.Label)
	}
	if _, ok := w.Days(); ok {
		t.Fatalf("expected a partial day window")
	}
}

func TestParseWindowMonth(t *testing.T) {
	w, err := ParseWindow("1mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := w.Days(); !ok || n != 30 {
		t.Fatalf("expected 30 days, got %d %v", n, ok)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "0d", "3 fortnights"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestRangeAlignsToDates(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

	w, _ := ParseWindow("3d")
	since, until := w.Range(now)
	if want := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC); !since.Equal(want) {
		t.Fatalf("expected %v, got %v", want, since)
	}
	if !until.Equal(now) {
		t.Fatalf("expected until to be now, got %v", until)
	}

	w, _ = ParseWindow("6h")
	since, _ = w.Range(now)
	if want := now.Add(-6 * time.Hour); !since.Equal(want) {
		t.Fatalf("expected %v, got %v", want, since)
	}
}
