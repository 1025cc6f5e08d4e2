package diary

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UntitledNote is the title given to notes created with a blank title.
const UntitledNote = "Untitled"

// EntryOptions are the optional annotations of a new entry.
type EntryOptions struct {
	Mood Mood
	Tags []string
}

// EntryPatch replaces the fields that are non-nil.
type EntryPatch struct {
	Text *string
	Mood *Mood
	Tags *[]string
}

// NoteInput is the user supplied part of a new note.
type NoteInput struct {
	Title   string
	Content string
}

// NotePatch replaces the fields that are non-nil.
type NotePatch struct {
	Title   *string
	Content *string
}

// EnsureDay returns the bucket for key, creating an empty one if needed.
func EnsureDay(doc *Document, key string) *DailyLog {
	if doc.Logs == nil {
		doc.Logs = make(map[string]*DailyLog)
	}
	day, ok := doc.Logs[key]
	if !ok || day == nil {
		day = &DailyLog{Date: key, Entries: []Entry{}}
		doc.Logs[key] = day
	}
	return day
}

// AddEntry appends a new entry to the bucket of now's date. Text is stored
// as given; callers reject blank text before getting here.
func AddEntry(doc *Document, now time.Time, text string, opts EntryOptions) Entry {
	e := Entry{
		ID:   uuid.NewString(),
		Time: At(now),
		Text: text,
		Mood: opts.Mood,
		Tags: filterTags(opts.Tags),
	}
	day := EnsureDay(doc, DateKey(now))
	day.Entries = append(day.Entries, e)
	return e
}

// UpdateEntry merges patch into the entry with id in the given day. It
// reports whether an entry was found.
func UpdateEntry(doc *Document, dayKey, id string, patch EntryPatch) bool {
	day := EnsureDay(doc, dayKey)
	for i := range day.Entries {
		if day.Entries[i].ID != id {
			continue
		}
		e := &day.Entries[i]
		if patch.Text != nil {
			e.Text = *patch.Text
		}
		if patch.Mood != nil {
			e.Mood = *patch.Mood
		}
		if patch.Tags != nil {
			e.Tags = filterTags(*patch.Tags)
		}
		return true
	}
	return false
}

// DeleteEntry removes the entry with id from the given day.
func DeleteEntry(doc *Document, dayKey, id string) bool {
	day := EnsureDay(doc, dayKey)
	kept := make([]Entry, 0, len(day.Entries))
	for _, e := range day.Entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	removed := len(kept) != len(day.Entries)
	day.Entries = kept
	return removed
}

// AddNote appends a note to the end of the notes list.
func AddNote(doc *Document, now time.Time, in NoteInput) Note {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = UntitledNote
	}
	n := Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   in.Content,
		CreatedAt: At(now),
	}
	doc.Notes = append(doc.Notes, n)
	return n
}

// UpdateNote merges patch into the note with id. The id and creation time
// never change.
func UpdateNote(doc *Document, id string, patch NotePatch) bool {
	for i := range doc.Notes {
		if doc.Notes[i].ID != id {
			continue
		}
		if patch.Title != nil {
			doc.Notes[i].Title = *patch.Title
		}
		if patch.Content != nil {
			doc.Notes[i].Content = *patch.Content
		}
		return true
	}
	return false
}

// DeleteNote removes the note with id.
func DeleteNote(doc *Document, id string) bool {
	kept := make([]Note, 0, len(doc.Notes))
	for _, n := range doc.Notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	removed := len(kept) != len(doc.Notes)
	doc.Notes = kept
	return removed
}

var tagSeparators = regexp.MustCompile(`[\s,]+`)

// ParseTags splits free text on whitespace and commas, strips one leading
// '#' from each tag and drops empties: "#work, personal  #urgent" gives
// [work personal urgent].
func ParseTags(raw string) []string {
	var tags []string
	for _, t := range tagSeparators.Split(raw, -1) {
		t = strings.TrimPrefix(strings.TrimSpace(t), "#")
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}
