// Package export renders the diary document for download: a JSON copy that
// can be loaded back, and a Markdown-like text digest.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/diary"
)

// Kind names an export format.
type Kind string

const (
	KindJSON Kind = "json"
	KindText Kind = "text"
)

// Kinds lists the supported formats.
func Kinds() []Kind {
	return []Kind{KindJSON, KindText}
}

// ParseKind accepts the format names used on the command line. "md" and
// "markdown" are aliases for text.
func ParseKind(v string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "json":
		return KindJSON, nil
	case "text", "md", "markdown":
		return KindText, nil
	}
	return "", fmt.Errorf("export: unknown format %q", v)
}

// Extension is the file extension for k, without the dot.
func (k Kind) Extension() string {
	if k == KindText {
		return "md"
	}
	return "json"
}

// ContentType is the media type of an export of kind k.
func ContentType(k Kind) string {
	if k == KindText {
		return "text/markdown"
	}
	return "application/json"
}

// Filename is the suggested download name for an export made at now.
func Filename(k Kind, now time.Time) string {
	return fmt.Sprintf("diary-export-%s.%s", diary.DateKey(now), k.Extension())
}

// JSON is the sanitized document indented by two spaces.
func JSON(doc *diary.Document) ([]byte, error) {
	b, err := json.MarshalIndent(diary.Sanitize(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return b, nil
}

// Text is a human readable digest of doc. Entry times and note creation
// times are shown in loc; a nil loc means time.Local.
func Text(doc *diary.Document, loc *time.Location) []byte {
	if loc == nil {
		loc = time.Local
	}
	doc = diary.Sanitize(doc)

	lines := []string{"# Diary Export", "", "## Daily Logs"}
	for _, key := range doc.Days() {
		day := doc.Logs[key]
		lines = append(lines, "", "### "+day.Date)
		for _, e := range day.Entries {
			lines = append(lines, entryLine(e, loc))
		}
	}

	lines = append(lines, "", "## Notes")
	for _, n := range doc.Notes {
		lines = append(lines,
			"",
			"### "+n.Title,
			"Created: "+n.CreatedAt.Display(loc, "2006-01-02 15:04"),
			"",
			n.Content,
		)
	}
	return []byte(strings.Join(lines, "\n"))
}

func entryLine(e diary.Entry, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(e.Time.Display(loc, "3:04 PM"))
	if e.Mood != "" {
		b.WriteString(" ")
		b.WriteString(string(e.Mood))
	}
	if len(e.Tags) > 0 {
		b.WriteString(" [#")
		b.WriteString(strings.Join(e.Tags, " #"))
		b.WriteString("]")
	}
	b.WriteString(": ")
	b.WriteString(e.Text)
	return b.String()
}

// Render produces the export of kind k.
func Render(doc *diary.Document, k Kind, loc *time.Location) ([]byte, error) {
	switch k {
	case KindJSON:
		return JSON(doc)
	case KindText:
		return Text(doc, loc), nil
	}
	return nil, fmt.Errorf("export: unknown format %q", k)
}
