package diary

import "strings"

// Sanitize returns a copy of doc in the strict persisted shape. It never
// fails: missing collections become empty, bucket dates are forced to their
// keys, unknown moods and blank tags are dropped, and notes keep only their
// four fields.
func Sanitize(doc *Document) *Document {
	out := New()
	if doc == nil {
		return out
	}
	for k, day := range doc.Logs {
		bucket := &DailyLog{Date: k, Entries: []Entry{}}
		if day != nil {
			for _, e := range day.Entries {
				bucket.Entries = append(bucket.Entries, sanitizeEntry(e))
			}
		}
		out.Logs[k] = bucket
	}
	for _, n := range doc.Notes {
		out.Notes = append(out.Notes, Note{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}

func sanitizeEntry(e Entry) Entry {
	out := Entry{ID: e.ID, Time: e.Time, Text: e.Text}
	if e.Mood != "" && e.Mood.Valid() {
		out.Mood = e.Mood
	}
	if tags := filterTags(e.Tags); len(tags) > 0 {
		out.Tags = tags
	}
	return out
}

// filterTags drops blank tags. It returns nil rather than an empty slice so
// the field stays absent when persisted.
func filterTags(in []string) []string {
	var out []string
	for _, t := range in {
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
