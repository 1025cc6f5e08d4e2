package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/store"
)

var testNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := &store.Store{Local: store.NewLocal(t.TempDir(), "diary:data:v1", nil)}
	a := app.New(st, time.Hour)
	a.Clock = func() time.Time { return testNow }
	t.Cleanup(a.Flush)
	return NewService(a, time.UTC)
}

func TestServiceAddEntry(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.AddEntry(ctx, AddEntryOptions{
		Text: "Wrote the release notes",
		Mood: "excited",
		Tags: "#work, release",
	})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if dto.Date != "2025-03-14" {
		t.Fatalf("expected today's date, got %s", dto.Date)
	}
	if dto.Mood != string(diary.MoodExcited) || dto.MoodName != "excited" {
		t.Fatalf("unexpected mood %q/%q", dto.Mood, dto.MoodName)
	}
	if strings.Join(dto.Tags, ",") != "work,release" {
		t.Fatalf("unexpected tags %v", dto.Tags)
	}
	if dto.Local != "9:30 AM" {
		t.Fatalf("unexpected local time %q", dto.Local)
	}
}

func TestServiceAddEntryRejects(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.AddEntry(ctx, AddEntryOptions{Text: "  "}); !errors.Is(err, app.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if _, err := svc.AddEntry(ctx, AddEntryOptions{Text: "x", Mood: "grumpy"}); err == nil {
		t.Fatalf("expected unknown mood error")
	}
}

func TestServiceUpdateEntry(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, _ := svc.AddEntry(ctx, AddEntryOptions{Text: "draft", Mood: "tired", Tags: "a"})
	empty := ""
	text := "final"
	updated, err := svc.UpdateEntry(ctx, UpdateEntryOptions{
		ID:   dto.ID[:8],
		Text: &text,
		Mood: &empty,
	})
	if err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	if updated.ID != dto.ID || updated.Text != "final" || updated.Mood != "" {
		t.Fatalf("unexpected update %#v", updated)
	}
	if len(updated.Tags) != 1 {
		t.Fatalf("expected tags to be kept, got %v", updated.Tags)
	}
}

func TestServiceDeleteEntry(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, _ := svc.AddEntry(ctx, AddEntryOptions{Text: "oops"})
	if _, err := svc.DeleteEntry(ctx, dto.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	_, entries, err := svc.Day(ctx, "")
	if err != nil {
		t.Fatalf("Day failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty day, got %v", entries)
	}
	if _, err := svc.DeleteEntry(ctx, dto.ID); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceSearchEntries(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, _ = svc.AddEntry(ctx, AddEntryOptions{Text: "Coffee with Sam", Tags: "social"})
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Text: "Gym"})
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Text: "More coffee"})

	results, err := svc.SearchEntries(ctx, "COFFEE", 10)
	if err != nil {
		t.Fatalf("SearchEntries failed: %v", err)
	}
	if len(results) != 2 || results[0].Text != "More coffee" {
		t.Fatalf("expected newest match first, got %#v", results)
	}

	results, _ = svc.SearchEntries(ctx, "#social", 10)
	if len(results) != 1 || results[0].Text != "Coffee with Sam" {
		t.Fatalf("expected tag match, got %#v", results)
	}

	results, _ = svc.SearchEntries(ctx, "coffee", 1)
	if len(results) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(results))
	}
}

func TestServiceNotes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	n, err := svc.AddNote(ctx, "  ", "body")
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if n.Title != diary.UntitledNote {
		t.Fatalf("expected default title, got %q", n.Title)
	}

	title := "Renamed"
	updated, err := svc.UpdateNote(ctx, n.ID, &title, nil)
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if updated.Title != "Renamed" || updated.Content != "body" {
		t.Fatalf("unexpected note %#v", updated)
	}

	got, err := svc.NoteByID(ctx, n.ID[:6])
	if err != nil || got.ID != n.ID {
		t.Fatalf("expected lookup by prefix, got %#v, %v", got, err)
	}

	if _, err := svc.DeleteNote(ctx, n.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	notes, _ := svc.ListNotes(ctx)
	if len(notes) != 0 {
		t.Fatalf("expected no notes, got %v", notes)
	}
}

func TestServiceListDaysAndReport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, _ = svc.AddEntry(ctx, AddEntryOptions{Text: "a", Mood: "happy", Tags: "x"})
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Text: "b", Mood: "😊", Tags: "x y"})

	days, err := svc.ListDays(ctx)
	if err != nil {
		t.Fatalf("ListDays failed: %v", err)
	}
	if len(days) != 1 || days[0].EntryCount != 2 || days[0].LatestEntry != "b" || days[0].MoodsPresent != "😊" {
		t.Fatalf("unexpected days %#v", days)
	}

	report, err := svc.Report(ctx, "1d")
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if report.Total != 2 || report.Moods[diary.MoodHappy] != 2 || report.Tags[0].Tag != "x" {
		t.Fatalf("unexpected report %#v", report)
	}
	if _, err := svc.Report(ctx, "soon"); err == nil {
		t.Fatalf("expected invalid window error")
	}
}

func TestServiceExport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, _ = svc.AddEntry(ctx, AddEntryOptions{Text: "exported"})

	kind, b, err := svc.Export(ctx, "md")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if kind.Extension() != "md" || !strings.Contains(string(b), "- 9:30 AM: exported") {
		t.Fatalf("unexpected export %s:\n%s", kind, b)
	}
}
