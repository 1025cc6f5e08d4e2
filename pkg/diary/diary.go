// Package diary holds the journal document model and the pure functions that
// mutate and normalize it.
package diary

import (
	"encoding/json"
	"sort"
)

// Document is the single root aggregate: every day log and every note.
type Document struct {
	Logs  map[string]*DailyLog `json:"logs"`
	Notes []Note               `json:"notes"`
}

// DailyLog is the bucket of entries written on one calendar date.
type DailyLog struct {
	Date    string  `json:"date"`
	Entries []Entry `json:"entries"`
}

// Entry is one timestamped line in a day log.
type Entry struct {
	ID   string    `json:"id"`
	Time Timestamp `json:"time"`
	Text string    `json:"text"`
	Mood Mood      `json:"mood,omitempty"`
	Tags []string  `json:"tags,omitempty"`
}

// Note is a titled free text record that is not tied to a date.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"createdAt"`
}

// New returns an empty document.
func New() *Document {
	return &Document{
		Logs:  make(map[string]*DailyLog),
		Notes: []Note{},
	}
}

// Decode parses raw JSON and sanitizes the result.
func Decode(b []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(b, doc); err != nil {
		return nil, err
	}
	return Sanitize(doc), nil
}

// Encode sanitizes the document and returns its compact JSON form.
func Encode(doc *Document) ([]byte, error) {
	return json.Marshal(Sanitize(doc))
}

// Day returns the bucket for key without creating it.
func (d *Document) Day(key string) (*DailyLog, bool) {
	if d == nil || d.Logs == nil {
		return nil, false
	}
	day, ok := d.Logs[key]
	return day, ok && day != nil
}

// Days lists the date keys in ascending order.
func (d *Document) Days() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.Logs))
	for k := range d.Logs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Note finds a note by id.
func (d *Document) Note(id string) (Note, bool) {
	if d == nil {
		return Note{}, false
	}
	for _, n := range d.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Entry finds an entry by id in any day, returning the day key it lives in.
func (d *Document) Entry(id string) (Entry, string, bool) {
	for _, key := range d.Days() {
		day := d.Logs[key]
		if day == nil {
			continue
		}
		for _, e := range day.Entries {
			if e.ID == id {
				return e, key, true
			}
		}
	}
	return Entry{}, "", false
}

// Clone returns a deep copy so callers can edit without sharing slices.
func (d *Document) Clone() *Document {
	if d == nil {
		return New()
	}
	out := &Document{
		Logs:  make(map[string]*DailyLog, len(d.Logs)),
		Notes: make([]Note, len(d.Notes)),
	}
	copy(out.Notes, d.Notes)
	for k, day := range d.Logs {
		if day == nil {
			out.Logs[k] = nil
			continue
		}
		entries := make([]Entry, len(day.Entries))
		for i, e := range day.Entries {
			e.Tags = cloneStrings(e.Tags)
			entries[i] = e
		}
		out.Logs[k] = &DailyLog{Date: day.Date, Entries: entries}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
