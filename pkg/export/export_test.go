package export

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/diary/pkg/diary"
)

var testNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func sampleDoc() *diary.Document {
	doc := diary.New()
	diary.AddEntry(doc, testNow, "Shipped it", diary.EntryOptions{Mood: diary.MoodExcited, Tags: []string{"work", "release"}})
	diary.AddEntry(doc, testNow.Add(-24*time.Hour), "Quiet day", diary.EntryOptions{})
	diary.AddNote(doc, testNow, diary.NoteInput{Title: "Book list", Content: "Dune\nHyperion"})
	return doc
}

func TestJSONRoundTrip(t *testing.T) {
	doc := sampleDoc()
	b, err := JSON(doc)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(b), "\n  \"logs\"") {
		t.Fatalf("expected two space indent, got:\n%s", b)
	}

	back, err := diary.Decode(b)
	if err != nil {
		t.Fatalf("reimport: %v", err)
	}
	if !reflect.DeepEqual(back, diary.Sanitize(doc)) {
		t.Fatalf("reimport lost data:\nwant %#v\ngot  %#v", diary.Sanitize(doc), back)
	}
}

func TestText(t *testing.T) {
	doc := sampleDoc()
	got := string(Text(doc, time.UTC))

	want := strings.Join([]string{
		"# Diary Export",
		"",
		"## Daily Logs",
		"",
		"### 2025-03-13",
		"- 9:30 AM: Quiet day",
		"",
		"### 2025-03-14",
		"- 9:30 AM 🚀 [#work #release]: Shipped it",
		"",
		"## Notes",
		"",
		"### Book list",
		"Created: 2025-03-14 09:30",
		"",
		"Dune\nHyperion",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected text export:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestTextEmpty(t *testing.T) {
	got := string(Text(nil, time.UTC))
	want := "# Diary Export\n\n## Daily Logs\n\n## Notes"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(KindJSON, testNow); got != "diary-export-2025-03-14.json" {
		t.Fatalf("unexpected json name %q", got)
	}
	if got := Filename(KindText, testNow); got != "diary-export-2025-03-14.md" {
		t.Fatalf("unexpected text name %q", got)
	}
	if ContentType(KindText) != "text/markdown" || ContentType(KindJSON) != "application/json" {
		t.Fatalf("unexpected content types")
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"": KindJSON, "JSON": KindJSON, "md": KindText, "markdown": KindText, "text": KindText} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseKind("pdf"); err == nil {
		t.Fatalf("expected error for pdf")
	}
}
